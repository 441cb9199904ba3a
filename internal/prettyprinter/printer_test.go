package prettyprinter

import (
	"testing"

	"github.com/AndyShiue/Ende/internal/analyzer"
	"github.com/AndyShiue/Ende/internal/ast"
	"github.com/AndyShiue/Ende/internal/symbols"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

func lit(n int32) ast.Term     { return &ast.Literal{Value: n} }
func ref(name string) ast.Term { return &ast.Var{Name: name} }

func infix(l ast.Term, op ast.Operator, r ast.Term) ast.Term {
	return &ast.Infix{Left: l, Op: op, Right: r}
}

func TestPrintTerms(t *testing.T) {
	tests := []struct {
		name string
		term ast.Term
		want string
	}{
		{"literal", lit(-3), "-3"},
		{"precedence", infix(ref("a"), ast.Add, infix(ref("b"), ast.Mul, ref("c"))), "a + b * c"},
		{"parens on lower left", infix(infix(ref("a"), ast.Add, ref("b")), ast.Mul, ref("c")), "(a + b) * c"},
		{"left associative", infix(infix(ref("a"), ast.Sub, ref("b")), ast.Sub, ref("c")), "a - b - c"},
		{"parens on right", infix(ref("a"), ast.Sub, infix(ref("b"), ast.Sub, ref("c"))), "a - (b - c)"},
		{"comparison", infix(infix(ref("a"), ast.Add, lit(1)), ast.Le, ref("b")), "a + 1 <= b"},
		{"call", &ast.Call{Func: ast.FunctionCall{Name: "f"}, Args: []ast.Term{lit(1), infix(ref("x"), ast.Div, lit(2))}}, "f(1, x / 2)"},
		{"nullary call", &ast.Call{Func: ast.FunctionCall{Name: "g"}}, "g()"},
		{"if", &ast.If{Cond: ref("b"), Then: lit(1), Else: lit(2)}, "if b then 1 else 2"},
		{"if operand", infix(&ast.If{Cond: ref("b"), Then: lit(1), Else: lit(2)}, ast.Add, lit(3)), "(if b then 1 else 2) + 3"},
		{"nested if condition", &ast.If{Cond: &ast.If{Cond: ref("b"), Then: lit(1), Else: lit(0)}, Then: lit(1), Else: lit(2)}, "if (if b then 1 else 0) then 1 else 2"},
		{"empty scope", &ast.Scope{Block: &ast.Block{}}, "{}"},
		{"statement as term", &ast.Stmt{Stmt: &ast.Let{Name: "x", Term: lit(1)}}, "let x = 1"},
		{"empty while", &ast.While{Cond: ref("n"), Body: &ast.Block{}}, "while n {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Print(tt.term); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintProgram(t *testing.T) {
	p := &ast.Program{Main: &ast.Block{
		Stmts: []ast.Statement{
			&ast.Extern{Name: "f", Type: typesystem.Func{Params: []typesystem.Type{typesystem.I32{}}, Return: typesystem.I32{}}},
			&ast.LetMut{Name: "i", Term: lit(0)},
			&ast.TermSemicolon{Term: &ast.While{
				Cond: infix(ref("i"), ast.Lt, lit(10)),
				Body: &ast.Block{Stmts: []ast.Statement{
					&ast.Mutate{Name: "i", Term: infix(ref("i"), ast.Add, lit(1))},
				}},
			}},
		},
		End: &ast.Call{Func: ast.FunctionCall{Name: "f"}, Args: []ast.Term{ref("i")}},
	}}

	want := `extern f: (I32, ) -> I32;
let mut i = 0;
while i < 10 {
    i = i + 1;
};
f(i)
`
	if got := Print(p); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTypedPrinter(t *testing.T) {
	boolType := typesystem.Enum{Name: "Bool", Variants: []string{"true", "false"}}
	env := symbols.NewEnvironment[typesystem.Type]()
	env.Define("b", boolType)

	p := &ast.Program{Main: &ast.Block{
		Stmts: []ast.Statement{
			&ast.Let{Name: "x", Term: lit(1)},
			&ast.TermSemicolon{Term: infix(ref("x"), ast.Add, lit(2))},
			&ast.Let{Name: "y", Term: &ast.Scope{Block: &ast.Block{
				Stmts: []ast.Statement{&ast.TermSemicolon{Term: ref("b")}},
				End:   ref("b"),
			}}},
		},
		End: ref("x"),
	}}

	prog, errs := analyzer.New().Check(p, env)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	want := `let x = 1;
x + 2;  // : Unit
let y = {
    b;  // : Unit
    b  // : Bool
};
x  // : I32
`
	if got := NewTypedPrinter().Print(prog); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
