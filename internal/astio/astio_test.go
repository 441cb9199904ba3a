package astio

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/AndyShiue/Ende/internal/ast"
	"github.com/AndyShiue/Ende/internal/diagnostics"
	"github.com/AndyShiue/Ende/internal/pipeline"
	"github.com/AndyShiue/Ende/internal/prelude"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

var boolType = typesystem.Enum{Name: "Bool", Variants: []string{"true", "false"}}

var enums = map[string]typesystem.Enum{"Bool": boolType}

const everything = `
main:
  stmts:
    - extern: {name: not, type: "(Bool) -> Bool"}
    - letmut: {name: i, term: {lit: 0}}
    - let:
        name: s
        term:
          scope:
            stmts: []
            end: {lit: -7}
    - expr:
        while:
          cond: {infix: {op: "<", left: {var: i}, right: {lit: 10}}}
          body:
            stmts:
              - mutate: {name: i, term: {infix: {op: "+", left: {var: i}, right: {lit: 1}}}}
    - expr: {call: {name: not, args: [{var: b}]}}
    - expr: {call: {name: tick, args: []}}
    - expr: {call: {name: tock}}
  end:
    if:
      cond: {var: b}
      then: {stmt: {let: {name: x, term: {lit: 1}}}}
      else: {scope: {}}
`

func wantEverything() *ast.Program {
	i := &ast.Var{Name: "i"}
	return &ast.Program{Main: &ast.Block{
		Stmts: []ast.Statement{
			&ast.Extern{Name: "not", Type: typesystem.Func{Params: []typesystem.Type{boolType}, Return: boolType}},
			&ast.LetMut{Name: "i", Term: &ast.Literal{Value: 0}},
			&ast.Let{Name: "s", Term: &ast.Scope{Block: &ast.Block{Stmts: []ast.Statement{}, End: &ast.Literal{Value: -7}}}},
			&ast.TermSemicolon{Term: &ast.While{
				Cond: &ast.Infix{Left: i, Op: ast.Lt, Right: &ast.Literal{Value: 10}},
				Body: &ast.Block{Stmts: []ast.Statement{
					&ast.Mutate{Name: "i", Term: &ast.Infix{Left: &ast.Var{Name: "i"}, Op: ast.Add, Right: &ast.Literal{Value: 1}}},
				}},
			}},
			&ast.TermSemicolon{Term: &ast.Call{Func: ast.FunctionCall{Name: "not"}, Args: []ast.Term{&ast.Var{Name: "b"}}}},
			&ast.TermSemicolon{Term: &ast.Call{Func: ast.FunctionCall{Name: "tick"}, Args: []ast.Term{}}},
			&ast.TermSemicolon{Term: &ast.Call{Func: ast.FunctionCall{Name: "tock"}}},
		},
		End: &ast.If{
			Cond: &ast.Var{Name: "b"},
			Then: &ast.Stmt{Stmt: &ast.Let{Name: "x", Term: &ast.Literal{Value: 1}}},
			Else: &ast.Scope{Block: &ast.Block{}},
		},
	}}
}

func TestDecode(t *testing.T) {
	got, err := Decode([]byte(everything), enums)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if want := wantEverything(); !reflect.DeepEqual(got, want) {
		t.Errorf("Decode mismatch\n got: %#v\nwant: %#v", got.Main, want.Main)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := wantEverything()
	data, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data, enums)
	if err != nil {
		t.Fatalf("Decode of encoded program: %v\n%s", err, data)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip changed the tree:\n%s", data)
	}

	again, err := Encode(got)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(again) != string(data) {
		t.Errorf("encoding is not stable:\n%s\n---\n%s", data, again)
	}
}

func TestEncodeQuotesAmbiguousNames(t *testing.T) {
	p := &ast.Program{Main: &ast.Block{End: &ast.Infix{
		Left:  &ast.Var{Name: "true"},
		Op:    ast.Mul,
		Right: &ast.Var{Name: "null"},
	}}}
	data, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data, nil)
	if err != nil {
		t.Fatalf("Decode: %v\n%s", err, data)
	}
	if !reflect.DeepEqual(got, p) {
		t.Errorf("round trip changed the tree:\n%s", data)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty document", "", "empty document"},
		{"invalid yaml", "main: [", "yaml"},
		{"missing main", "other: 1", `unknown field "other"`},
		{"main not a mapping", "main: 3", "block: expected a mapping"},
		{"unknown term", "main: {end: {lambda: x}}", `unknown term "lambda"`},
		{"two keys", "main: {end: {lit: 1, var: x}}", "exactly one key"},
		{"bad literal", "main: {end: {lit: 1.5}}", "not a 32-bit integer"},
		{"literal overflow", "main: {end: {lit: 3000000000}}", "not a 32-bit integer"},
		{"unknown operator", `main: {end: {infix: {op: "%", left: {lit: 1}, right: {lit: 2}}}}`, `unknown operator "%"`},
		{"missing operand", `main: {end: {infix: {op: "+", left: {lit: 1}}}}`, "infix: missing right"},
		{"unknown statement", "main: {stmts: [{fn: x}]}", `unknown statement "fn"`},
		{"let without term", "main: {stmts: [{let: {name: x}}]}", "let: missing term"},
		{"stmts not a sequence", "main: {stmts: {lit: 1}}", "stmts must be a sequence"},
		{"unknown extern type", "main: {stmts: [{extern: {name: f, type: Color}}]}", "extern f: unknown type: Color"},
		{"while without body", "main: {end: {while: {cond: {lit: 1}}}}", "while: missing body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.yaml), enums)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
			if !IsDecodeError(err) {
				t.Errorf("expected a DecodeError, got %T", err)
			}
		})
	}
}

func TestDecodeErrorPosition(t *testing.T) {
	src := "main:\n  stmts:\n    - let: {name: x, term: {lit: 1}}\n    - oops: 1\n"
	_, err := Decode([]byte(src), nil)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected a DecodeError, got %v", err)
	}
	if de.Line != 4 || de.Column != 7 {
		t.Errorf("position = %d:%d, want 4:7", de.Line, de.Column)
	}
	if !strings.HasPrefix(de.Error(), "line 4, column 7: ") {
		t.Errorf("Error() = %q", de.Error())
	}
}

func TestUnknownExternTypeUnwraps(t *testing.T) {
	_, err := Decode([]byte("main: {stmts: [{extern: {name: f, type: Color}}]}"), nil)
	var unknown *typesystem.UnknownTypeError
	if !errors.As(err, &unknown) {
		t.Errorf("expected an UnknownTypeError in the chain, got %v", err)
	}
}

func TestDecodeProcessor(t *testing.T) {
	cfg, err := prelude.ParseConfig([]byte(`enums: [{name: Bool, variants: ["true", "false"]}]`), "ende.yaml")
	if err != nil {
		t.Fatal(err)
	}
	ctx := pipeline.NewPipelineContext("main.ende.yaml", []byte(everything))
	ctx.Config = cfg
	ctx = (&DecodeProcessor{}).Process(ctx)
	if ctx.HasErrors() {
		t.Fatalf("unexpected errors: %v", diagnostics.Messages(ctx.Errors))
	}
	if !reflect.DeepEqual(ctx.AstRoot, wantEverything()) {
		t.Errorf("processor decoded a different tree")
	}

	bad := pipeline.NewPipelineContext("bad.ende.yaml", []byte("main: {end: {lit: x}}"))
	bad = (&DecodeProcessor{}).Process(bad)
	if len(bad.Errors) != 1 || bad.Errors[0].Code != diagnostics.ErrD001 || bad.Errors[0].File != "bad.ende.yaml" {
		t.Errorf("expected one D001 diagnostic for bad.ende.yaml, got %v", bad.Errors)
	}
	if bad.AstRoot != nil {
		t.Errorf("no tree may be set on failure")
	}
}
