// # internal/render/export.go
package render

import (
	"log/slog"
	"os/exec"

	"modgraph/internal/core/errors"
	"modgraph/internal/extract"
	"modgraph/internal/shared/util"
)

// Exporter writes the graph description and hands it to the external
// rasterizer and viewer. All paths and commands come from configuration;
// nothing is hardcoded in the engine.
type Exporter struct {
	DOTPath    string
	ImagePath  string
	RenderCmd  string // e.g. "dot"
	RenderArgs []string
	ViewerCmd  string // e.g. "xdg-open"
}

// Export writes the DOT file, then fires the rasterizer and viewer. The two
// process invocations are fire-and-forget: their exit codes are not
// interpreted, only failures to start are logged.
func (e *Exporter) Export(edges []extract.Edge) error {
	dot := WriteDOT(edges)
	if err := util.WriteFileWithDirs(e.DOTPath, []byte(dot), 0644); err != nil {
		return errors.AddContext(
			errors.Wrap(err, errors.CodeInternal, "write graph description"),
			errors.CtxPath, e.DOTPath,
		)
	}

	if e.RenderCmd != "" && e.ImagePath != "" {
		args := append(append([]string{}, e.RenderArgs...), e.DOTPath, "-o", e.ImagePath)
		cmd := exec.Command(e.RenderCmd, args...)
		if err := cmd.Start(); err != nil {
			slog.Warn("failed to start renderer", "cmd", e.RenderCmd, "error", err)
			return nil
		}
		go func() {
			_ = cmd.Wait()
			if e.ViewerCmd != "" {
				viewer := exec.Command(e.ViewerCmd, e.ImagePath)
				if err := viewer.Start(); err != nil {
					slog.Warn("failed to start viewer", "cmd", e.ViewerCmd, "error", err)
					return
				}
				go func() { _ = viewer.Wait() }()
			}
		}()
	}

	return nil
}
