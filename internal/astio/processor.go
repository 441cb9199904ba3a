package astio

import (
	"github.com/AndyShiue/Ende/internal/diagnostics"
	"github.com/AndyShiue/Ende/internal/pipeline"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

// DecodeProcessor turns ctx.Source into ctx.AstRoot. It runs after the
// prelude so enum names in extern types resolve.
type DecodeProcessor struct{}

func (dp *DecodeProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Source == nil || ctx.AstRoot != nil || ctx.HasErrors() {
		return ctx
	}

	var enums map[string]typesystem.Enum
	if ctx.Config != nil {
		enums = ctx.Config.EnumTable()
	}
	prog, err := Decode(ctx.Source, enums)
	if err != nil {
		ctx.AddErrors(diagnostics.Wrap(diagnostics.ErrD001, err, ""))
		return ctx
	}
	ctx.AstRoot = prog
	return ctx
}
