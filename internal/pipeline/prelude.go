package pipeline

import (
	"path/filepath"

	"github.com/AndyShiue/Ende/internal/diagnostics"
	"github.com/AndyShiue/Ende/internal/prelude"
)

// PreludeProcessor loads the prelude and seeds ctx.Env from it. Path names
// the prelude explicitly; otherwise it is searched for from the program's
// directory upwards, and a program without one starts from an empty prelude.
// A context that already has a Config is left alone.
type PreludeProcessor struct {
	Path string
}

func (pp *PreludeProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Config != nil {
		if ctx.Env == nil {
			ctx.Env = ctx.Config.Environment()
		}
		return ctx
	}

	path := pp.Path
	if path == "" && ctx.FilePath != "" {
		found, err := prelude.FindConfig(filepath.Dir(ctx.FilePath))
		if err != nil {
			ctx.AddErrors(diagnostics.Wrap(diagnostics.ErrC001, err, ""))
			return ctx
		}
		path = found
	}

	cfg := prelude.Empty()
	if path != "" {
		loaded, err := prelude.LoadConfig(path)
		if err != nil {
			ctx.AddErrors(diagnostics.Wrap(diagnostics.ErrC001, err, ""))
			return ctx
		}
		cfg = loaded
	}

	ctx.Config = cfg
	if ctx.Env == nil {
		ctx.Env = cfg.Environment()
	}
	return ctx
}
