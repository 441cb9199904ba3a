package analyzer

import (
	"strings"
	"testing"

	"github.com/AndyShiue/Ende/internal/ast"
	"github.com/AndyShiue/Ende/internal/diagnostics"
	"github.com/AndyShiue/Ende/internal/symbols"
	"github.com/AndyShiue/Ende/internal/tagged"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

var (
	i32      = typesystem.I32{}
	boolType = typesystem.Enum{Name: "Bool", Variants: []string{"true", "false"}}
)

// Bare tree shorthands.

func lit(n int32) ast.Term          { return &ast.Literal{Value: n} }
func ref(name string) ast.Term      { return &ast.Var{Name: name} }
func scope(b *ast.Block) ast.Term   { return &ast.Scope{Block: b} }
func wrap(s ast.Statement) ast.Term { return &ast.Stmt{Stmt: s} }

func infix(l ast.Term, op ast.Operator, r ast.Term) ast.Term {
	return &ast.Infix{Left: l, Op: op, Right: r}
}

func call(name string, args ...ast.Term) ast.Term {
	return &ast.Call{Func: ast.FunctionCall{Name: name}, Args: args}
}

func ifThen(c, t, e ast.Term) ast.Term { return &ast.If{Cond: c, Then: t, Else: e} }

func while(c ast.Term, body *ast.Block) ast.Term { return &ast.While{Cond: c, Body: body} }

func let(name string, t ast.Term) ast.Statement    { return &ast.Let{Name: name, Term: t} }
func letMut(name string, t ast.Term) ast.Statement { return &ast.LetMut{Name: name, Term: t} }
func mutate(name string, t ast.Term) ast.Statement { return &ast.Mutate{Name: name, Term: t} }
func expr(t ast.Term) ast.Statement                { return &ast.TermSemicolon{Term: t} }

func extern(name string, ty typesystem.Type) ast.Statement {
	return &ast.Extern{Name: name, Type: ty}
}

func block(end ast.Term, stmts ...ast.Statement) *ast.Block {
	return &ast.Block{Stmts: stmts, End: end}
}

func program(b *ast.Block) *ast.Program { return &ast.Program{Main: b} }

func fn(ret typesystem.Type, params ...typesystem.Type) typesystem.Func {
	if params == nil {
		params = []typesystem.Type{}
	}
	return typesystem.Func{Params: params, Return: ret}
}

// preludeEnv declares b: Bool, n: I32 and f: (I32, I32, ) -> I32.
func preludeEnv() *typeEnv {
	env := symbols.NewEnvironment[typesystem.Type]()
	env.Define("b", boolType)
	env.Define("n", i32)
	env.Define("f", fn(i32, i32, i32))
	return env
}

// checkSource runs the analyzer on a whole program.
func checkSource(p *ast.Program, env *typeEnv) (*tagged.Program[typesystem.Type], []*diagnostics.DiagnosticError) {
	return New().Check(p, env)
}

// expectChecks asserts the program checks and returns the tagged tree.
func expectChecks(t *testing.T, p *ast.Program, env *typeEnv) *tagged.Program[typesystem.Type] {
	t.Helper()
	prog, errs := checkSource(p, env)
	if errs != nil {
		t.Fatalf("expected no errors, got:\n%s", strings.Join(diagnostics.Messages(errs), "\n"))
	}
	if prog == nil {
		t.Fatalf("expected a tagged program")
	}
	return prog
}

// expectErrors asserts the program fails with exactly the given messages, in order.
func expectErrors(t *testing.T, p *ast.Program, env *typeEnv, code diagnostics.ErrorCode, msgs ...string) []*diagnostics.DiagnosticError {
	t.Helper()
	prog, errs := checkSource(p, env)
	if prog != nil {
		t.Errorf("no tagged tree may be returned alongside diagnostics")
	}
	if len(errs) != len(msgs) {
		t.Fatalf("expected %d error(s), got %d:\n%s", len(msgs), len(errs), strings.Join(diagnostics.Messages(errs), "\n"))
	}
	for i, e := range errs {
		if e.Code != code {
			t.Errorf("error %d: code %s, want %s (%s)", i, e.Code, code, e.Message)
		}
		if e.Message != msgs[i] {
			t.Errorf("error %d:\n got: %s\nwant: %s", i, e.Message, msgs[i])
		}
	}
	return errs
}
