package analyzer

import (
	"log"

	"github.com/AndyShiue/Ende/internal/pipeline"
	"github.com/AndyShiue/Ende/internal/symbols"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

// CheckProcessor type checks ctx.AstRoot against ctx.Env and stores the
// tagged tree. Logger, when set, receives the analyzer's trace lines.
type CheckProcessor struct {
	Logger *log.Logger
}

func (cp *CheckProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.HasErrors() {
		return ctx
	}
	if ctx.Env == nil {
		ctx.Env = symbols.NewEnvironment[typesystem.Type]()
	}

	a := New()
	a.SetLogger(cp.Logger)
	prog, errs := a.Check(ctx.AstRoot, ctx.Env)
	if errs != nil {
		ctx.AddErrors(errs...)
		return ctx
	}
	ctx.Tagged = prog
	return ctx
}
