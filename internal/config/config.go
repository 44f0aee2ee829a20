// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	GrammarPath string   `toml:"grammar_path"`
	SourcePaths []string `toml:"source_paths"`
	Exclude     Exclude  `toml:"exclude"`
	Watch       Watch    `toml:"watch"`
	Output      Output   `toml:"output"`
	History     History  `toml:"history"`
	Metrics     Metrics  `toml:"metrics"`
	Alerts      Alerts   `toml:"alerts"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
	// MaxRescansPerSecond caps how often change bursts trigger a full
	// re-aggregation. Zero means uncapped.
	MaxRescansPerSecond float64 `toml:"max_rescans_per_second"`
}

type Output struct {
	DOT        string   `toml:"dot"`
	Image      string   `toml:"image"`
	RenderCmd  string   `toml:"render_cmd"`
	RenderArgs []string `toml:"render_args"`
	ViewerCmd  string   `toml:"viewer_cmd"`
}

type History struct {
	Path string `toml:"path"`
}

type Metrics struct {
	Listen string `toml:"listen"` // e.g. "127.0.0.1:9188"; empty disables
}

type Alerts struct {
	Beep     bool `toml:"beep"`
	Terminal bool `toml:"terminal"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if len(cfg.SourcePaths) == 0 {
		cfg.SourcePaths = []string{"."}
	}
	if cfg.Output.DOT == "" {
		cfg.Output.DOT = "deps.dot"
	}
	if cfg.Output.RenderCmd == "" {
		cfg.Output.RenderCmd = "dot"
	}
	if len(cfg.Output.RenderArgs) == 0 {
		cfg.Output.RenderArgs = []string{"-Tpng"}
	}
	if cfg.Output.ViewerCmd == "" {
		cfg.Output.ViewerCmd = "xdg-open"
	}
}
