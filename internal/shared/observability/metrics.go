package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ParsingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "modgraph_parsing_seconds",
		Help:    "Time spent parsing a source unit.",
		Buckets: prometheus.DefBuckets,
	}, []string{"language"})

	GraphModules = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "modgraph_graph_modules_total",
		Help: "Number of distinct source modules in the last extraction.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "modgraph_graph_edges_total",
		Help: "Number of dependency edges in the last extraction.",
	})

	AggregationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "modgraph_aggregation_seconds",
		Help:    "Time spent on a full extract-and-render run.",
		Buckets: prometheus.DefBuckets,
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "modgraph_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})

	RendersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "modgraph_renders_total",
		Help: "Total number of graph descriptions written.",
	})
)
