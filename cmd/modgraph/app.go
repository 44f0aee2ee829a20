// # cmd/modgraph/app.go
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gobwas/glob"

	"modgraph/internal/config"
	"modgraph/internal/extract"
	"modgraph/internal/history"
	"modgraph/internal/parser"
	"modgraph/internal/render"
	"modgraph/internal/shared/observability"
	"modgraph/internal/shared/util"
	"modgraph/internal/watcher"
)

type App struct {
	Config     *config.Config
	Parser     *parser.Parser
	Exporter   *render.Exporter
	History    *history.Store
	teaProgram *tea.Program
}

// fsReader backs the aggregator's reader collaborator with the filesystem.
type fsReader struct{}

func (fsReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func NewApp(cfg *config.Config) (*App, error) {
	p, err := parser.New(cfg.GrammarPath)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		Parser: p,
		Exporter: &render.Exporter{
			DOTPath:    cfg.Output.DOT,
			ImagePath:  cfg.Output.Image,
			RenderCmd:  cfg.Output.RenderCmd,
			RenderArgs: cfg.Output.RenderArgs,
			ViewerCmd:  cfg.Output.ViewerCmd,
		},
	}

	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, err
		}
		app.History = store
	}

	return app, nil
}

func (a *App) Close() {
	if a.History != nil {
		_ = a.History.Close()
	}
}

// Run performs one full extraction: scan, aggregate, export, snapshot.
// Any unreadable or unparseable unit aborts the run with no output.
func (a *App) Run() error {
	start := time.Now()

	files, err := a.ScanDirectories(a.Config.SourcePaths, a.Config.Exclude.Dirs, a.Config.Exclude.Files)
	if err != nil {
		return err
	}

	edges, err := extract.Aggregate(files, fsReader{}, a.Parser)
	if err != nil {
		return err
	}

	moduleCount := len(sourceModules(edges))
	observability.GraphModules.Set(float64(moduleCount))
	observability.GraphEdges.Set(float64(len(edges)))

	if err := a.Exporter.Export(edges); err != nil {
		return err
	}
	observability.RendersTotal.Inc()

	duration := time.Since(start)
	observability.AggregationDuration.Observe(duration.Seconds())

	unresolved := unresolvedTargets(edges)
	a.saveRun(len(files), moduleCount, len(edges), len(unresolved), duration)
	a.PrintSummary(len(files), moduleCount, edges, unresolved, duration)

	if a.teaProgram != nil {
		a.teaProgram.Send(updateMsg{
			edges:       edges,
			unresolved:  unresolved,
			moduleCount: moduleCount,
			fileCount:   len(files),
		})
	}

	if a.Config.Alerts.Beep && len(unresolved) > 0 {
		fmt.Print("\a")
	}
	return nil
}

func (a *App) ScanDirectories(paths []string, excludeDirs, excludeFiles []string) ([]string, error) {
	var files []string

	dirGlobs := make([]glob.Glob, 0, len(excludeDirs))
	for _, p := range excludeDirs {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude dir pattern %q: %w", p, err)
		}
		dirGlobs = append(dirGlobs, g)
	}

	fileGlobs := make([]glob.Glob, 0, len(excludeFiles))
	for _, p := range excludeFiles {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude file pattern %q: %w", p, err)
		}
		fileGlobs = append(fileGlobs, g)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if a.Parser.Supports(root) {
				files = append(files, root)
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			base := filepath.Base(path)

			if d.IsDir() {
				for _, g := range dirGlobs {
					if g.Match(base) {
						return filepath.SkipDir
					}
				}
				return nil
			}

			if !a.Parser.Supports(path) {
				return nil
			}

			for _, g := range fileGlobs {
				if g.Match(base) {
					return nil
				}
			}

			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// HandleChanges re-runs the whole extraction. Aggregation has no partial
// mode, so a changed file that no longer parses leaves the previous outputs
// in place and logs the failure.
func (a *App) HandleChanges(paths []string) {
	slog.Info("detected changes", "count", len(paths))
	if err := a.Run(); err != nil {
		slog.Error("re-extraction failed", "error", err)
	}
}

func (a *App) StartWatcher() error {
	w, err := watcher.NewWatcher(
		a.Config.Watch.Debounce,
		a.Config.Watch.MaxRescansPerSecond,
		a.Config.Exclude.Dirs,
		a.Config.Exclude.Files,
		a.HandleChanges,
	)
	if err != nil {
		return err
	}
	// Note: We don't close here, it should run forever
	return w.Watch(a.Config.SourcePaths)
}

func (a *App) RunUI() error {
	m := initialModel()
	p := tea.NewProgram(m, tea.WithAltScreen())
	a.teaProgram = p

	_, err := p.Run()
	return err
}

func (a *App) saveRun(fileCount, moduleCount, edgeCount, unresolvedCount int, duration time.Duration) {
	if a.History == nil {
		return
	}
	_, err := a.History.SaveRun(projectKey(a.Config.SourcePaths), history.Run{
		FileCount:       fileCount,
		ModuleCount:     moduleCount,
		EdgeCount:       edgeCount,
		UnresolvedCount: unresolvedCount,
		DurationMs:      duration.Milliseconds(),
	})
	if err != nil {
		slog.Warn("failed to persist run snapshot", "error", err)
	}
}

func (a *App) PrintSummary(fileCount, moduleCount int, edges []extract.Edge, unresolved []string, duration time.Duration) {
	if !a.Config.Alerts.Terminal {
		return
	}

	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Extracted %d edges from %d files (%d modules) in %v\n", len(edges), fileCount, moduleCount, duration)

	if len(unresolved) > 0 {
		fmt.Printf("❓ %d unresolved short names: %s\n", len(unresolved), strings.Join(unresolved, ", "))
	} else {
		fmt.Println("✅ All references resolved.")
	}

	if moduleCount > 0 {
		fmt.Printf("Modules: %s\n", strings.Join(util.SortedStringKeys(sourceModules(edges)), ", "))
	}

	if a.History != nil {
		if runs, err := a.History.LoadRuns(projectKey(a.Config.SourcePaths), 10); err == nil && len(runs) > 1 {
			fmt.Printf("📈 Edge trend: %s\n", history.EdgeTrend(runs))
		}
	}
	fmt.Println(strings.Repeat("-", 40))
}

func sourceModules(edges []extract.Edge) map[string]bool {
	modules := make(map[string]bool)
	for _, e := range edges {
		modules[e.Source.String()] = true
	}
	return modules
}

// unresolvedTargets lists single-segment capitalized targets: short names no
// alias directive in scope accounted for. Lowercase single segments are
// legitimate atom-style references and are not reported.
func unresolvedTargets(edges []extract.Edge) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range edges {
		if len(e.Target) != 1 {
			continue
		}
		name := e.Target[0]
		if name == "" || !unicode.IsUpper(rune(name[0])) {
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func projectKey(sourcePaths []string) string {
	if len(sourcePaths) == 0 {
		return "default"
	}
	abs, err := filepath.Abs(sourcePaths[0])
	if err != nil {
		return sourcePaths[0]
	}
	return abs
}
