package analyzer

import (
	"fmt"
	"log"

	"github.com/AndyShiue/Ende/internal/ast"
	"github.com/AndyShiue/Ende/internal/diagnostics"
	"github.com/AndyShiue/Ende/internal/symbols"
	"github.com/AndyShiue/Ende/internal/tagged"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

type (
	typeEnv   = symbols.Environment[typesystem.Type]
	typedTerm = tagged.Term[typesystem.Type]
	errorList = []*diagnostics.DiagnosticError
)

// Analyzer is the type checker: the Annotator whose tags are types.
//
// Every rule receives the live environment. A sub-computation is either
// isolated (it gets env.Clone() and whatever it binds is dropped) or
// threaded (it gets env itself and its bindings stay visible to everything
// checked after it, including the caller). Which one applies is fixed per
// construct; see the rule for each node.
//
// Checking is fail-fast: the first failing sub-computation ends the
// enclosing rule and its diagnostics are returned unchanged. Call arguments
// are the one place several diagnostics are collected.
type Analyzer struct {
	logger *log.Logger
}

var _ tagged.Annotator[typesystem.Type] = (*Analyzer)(nil)

// New creates an Analyzer. It keeps no state between checks.
func New() *Analyzer {
	return &Analyzer{}
}

// SetLogger enables trace output. A nil logger disables it.
func (a *Analyzer) SetLogger(l *log.Logger) {
	a.logger = l
}

func (a *Analyzer) tracef(format string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Output(2, fmt.Sprintf(format, args...))
	}
}

// Check type checks a whole program against env, which may hold external
// declarations. A nil env means an empty one. On success env holds the
// program's top-level bindings.
func (a *Analyzer) Check(p *ast.Program, env *typeEnv) (*tagged.Program[typesystem.Type], errorList) {
	if env == nil {
		env = symbols.NewEnvironment[typesystem.Type]()
	}
	a.tracef("checking program against %d binding(s)", env.Len())
	prog, errs := a.TagProgram(p, env)
	if errs != nil {
		a.tracef("check failed with %d diagnostic(s)", len(errs))
		return nil, errs
	}
	a.tracef("check succeeded, %d binding(s) in scope", env.Len())
	return prog, nil
}

// TagProgram checks the top-level block. The program itself has no type.
func (a *Analyzer) TagProgram(p *ast.Program, env *typeEnv) (*tagged.Program[typesystem.Type], errorList) {
	main, errs := a.TagBlock(p.Main, env)
	if errs != nil {
		return nil, errs
	}
	return &tagged.Program[typesystem.Type]{Tag: typesystem.Forbidden{}, Main: main}, nil
}

// TagBlock checks statements in order on one live environment, so each
// statement sees the bindings of the ones before it, and so does the
// trailing term. The block's type is the trailing term's, or Unit.
func (a *Analyzer) TagBlock(b *ast.Block, env *typeEnv) (*tagged.Block[typesystem.Type], errorList) {
	var stmts []tagged.Statement[typesystem.Type]
	if b.Stmts != nil {
		stmts = make([]tagged.Statement[typesystem.Type], 0, len(b.Stmts))
	}
	for _, stmt := range b.Stmts {
		ts, errs := a.TagStatement(stmt, env)
		if errs != nil {
			return nil, errs
		}
		stmts = append(stmts, ts)
	}

	var tag typesystem.Type = typesystem.Unit()
	var end typedTerm
	if b.End != nil {
		te, errs := a.TagTerm(b.End, env)
		if errs != nil {
			return nil, errs
		}
		end = te
		tag = te.GetTag()
	}
	return &tagged.Block[typesystem.Type]{Tag: tag, Stmts: stmts, End: end}, nil
}
