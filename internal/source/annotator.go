package source

import (
	"errors"
	"fmt"

	"github.com/AndyShiue/Ende/internal/ast"
	"github.com/AndyShiue/Ende/internal/diagnostics"
	"github.com/AndyShiue/Ende/internal/symbols"
	"github.com/AndyShiue/Ende/internal/tagged"
)

// ErrUnsupported is the cause of every diagnostic PositionAnnotator returns.
var ErrUnsupported = errors.New("position tagging is not supported")

type (
	posEnv    = symbols.Environment[Position]
	errorList = []*diagnostics.DiagnosticError
)

// PositionAnnotator is the Annotator for the Position payload. Every method
// fails: bare trees carry no positions to produce tags from.
type PositionAnnotator struct{}

var _ tagged.Annotator[Position] = PositionAnnotator{}

func unsupported(kind string) errorList {
	return diagnostics.List(diagnostics.Wrap(
		diagnostics.ErrT008, // Unsupported
		ErrUnsupported,
		fmt.Sprintf("cannot tag %s", kind),
	))
}

func (PositionAnnotator) TagProgram(*ast.Program, *posEnv) (*tagged.Program[Position], errorList) {
	return nil, unsupported("program")
}

func (PositionAnnotator) TagBlock(*ast.Block, *posEnv) (*tagged.Block[Position], errorList) {
	return nil, unsupported("block")
}

func (PositionAnnotator) TagStatement(ast.Statement, *posEnv) (tagged.Statement[Position], errorList) {
	return nil, unsupported("statement")
}

func (PositionAnnotator) TagTerm(ast.Term, *posEnv) (tagged.Term[Position], errorList) {
	return nil, unsupported("term")
}

func (PositionAnnotator) TagFunctionCall(ast.FunctionCall, *posEnv) (*tagged.FunctionCall[Position], errorList) {
	return nil, unsupported("function call")
}
