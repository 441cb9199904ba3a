package pipeline

import (
	"github.com/google/uuid"

	"github.com/AndyShiue/Ende/internal/ast"
	"github.com/AndyShiue/Ende/internal/diagnostics"
	"github.com/AndyShiue/Ende/internal/prelude"
	"github.com/AndyShiue/Ende/internal/symbols"
	"github.com/AndyShiue/Ende/internal/tagged"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx *PipelineContext) *PipelineContext

func (f ProcessorFunc) Process(ctx *PipelineContext) *PipelineContext { return f(ctx) }

// PipelineContext carries one check run through the stages.
type PipelineContext struct {
	RunID    uuid.UUID
	FilePath string
	Source   []byte

	Config *prelude.Config                       // nil until a prelude is loaded
	Env    *symbols.Environment[typesystem.Type] // initial environment; receives top-level bindings

	AstRoot *ast.Program
	Tagged  *tagged.Program[typesystem.Type]

	Errors []*diagnostics.DiagnosticError
}

// NewPipelineContext starts a run over the given source.
func NewPipelineContext(path string, source []byte) *PipelineContext {
	return &PipelineContext{
		RunID:    uuid.New(),
		FilePath: path,
		Source:   source,
	}
}

// HasErrors reports whether any stage has failed.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}

// AddErrors appends errs, stamping the run's file path on them.
func (ctx *PipelineContext) AddErrors(errs ...*diagnostics.DiagnosticError) {
	ctx.Errors = append(ctx.Errors, diagnostics.WithFile(errs, ctx.FilePath)...)
}
