// # internal/config/config_test.go
package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	content := `
grammar_path = "./grammars/elixir.so"
source_paths = ["./lib"]

[exclude]
dirs = ["deps", "_build"]
files = ["*_test.exs"]

[watch]
debounce = "1s"
max_rescans_per_second = 2.0

[output]
dot = "deps.dot"
image = "deps.png"
render_cmd = "dot"
render_args = ["-Tpng"]
viewer_cmd = "xdg-open"

[history]
path = "modgraph-history.db"

[metrics]
listen = "127.0.0.1:9188"

[alerts]
beep = true
terminal = true
`
	tmpfile, err := os.CreateTemp("", "config*.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.GrammarPath != "./grammars/elixir.so" {
		t.Errorf("Expected GrammarPath ./grammars/elixir.so, got %s", cfg.GrammarPath)
	}
	if len(cfg.SourcePaths) != 1 || cfg.SourcePaths[0] != "./lib" {
		t.Errorf("Unexpected SourcePaths: %v", cfg.SourcePaths)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("Expected debounce 1s, got %v", cfg.Watch.Debounce)
	}
	if cfg.Watch.MaxRescansPerSecond != 2.0 {
		t.Errorf("Expected rescan cap 2.0, got %v", cfg.Watch.MaxRescansPerSecond)
	}
	if cfg.Output.DOT != "deps.dot" {
		t.Errorf("Expected DOT deps.dot, got %s", cfg.Output.DOT)
	}
	if cfg.Output.Image != "deps.png" {
		t.Errorf("Expected image deps.png, got %s", cfg.Output.Image)
	}
	if cfg.History.Path != "modgraph-history.db" {
		t.Errorf("Expected history path modgraph-history.db, got %s", cfg.History.Path)
	}
	if cfg.Metrics.Listen != "127.0.0.1:9188" {
		t.Errorf("Expected metrics listen 127.0.0.1:9188, got %s", cfg.Metrics.Listen)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("Expected default debounce 500ms, got %v", cfg.Watch.Debounce)
	}
	if len(cfg.SourcePaths) != 1 || cfg.SourcePaths[0] != "." {
		t.Errorf("Unexpected default SourcePaths: %v", cfg.SourcePaths)
	}
	if cfg.Output.DOT != "deps.dot" {
		t.Errorf("Expected default DOT deps.dot, got %s", cfg.Output.DOT)
	}
	if cfg.Output.RenderCmd != "dot" {
		t.Errorf("Expected default render cmd dot, got %s", cfg.Output.RenderCmd)
	}
	if cfg.Output.ViewerCmd != "xdg-open" {
		t.Errorf("Expected default viewer xdg-open, got %s", cfg.Output.ViewerCmd)
	}
}
