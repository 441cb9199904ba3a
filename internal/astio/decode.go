// Package astio reads and writes bare syntax trees in the YAML form the
// external parser hands over.
//
// Every node is a mapping with one key naming its variant:
//
//	main:
//	  stmts:
//	    - let: {name: x, term: {lit: 1}}
//	    - extern: {name: f, type: "(I32) -> I32"}
//	  end: {infix: {op: "+", left: {var: x}, right: {lit: 2}}}
//
// Terms are lit, var, infix, call, scope, if, while and stmt; statements are
// expr, let, letmut, mutate and extern. An absent stmts (or args) list and
// an empty one decode to nil and to an empty slice respectively, so Encode
// reproduces the input tree exactly.
package astio

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/AndyShiue/Ende/internal/ast"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

// DecodeError reports a malformed document at a YAML position.
type DecodeError struct {
	Line   int
	Column int
	Msg    string
	Err    error // underlying cause, if any
}

func (e *DecodeError) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode reads a program. enums resolves enum names in extern types.
func Decode(data []byte, enums map[string]typesystem.Enum) (*ast.Program, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Msg: err.Error(), Err: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &DecodeError{Msg: "empty document"}
	}

	d := &decoder{enums: enums}
	root := doc.Content[0]
	fields, err := d.fields(root, "program", "main")
	if err != nil {
		return nil, err
	}
	if fields["main"] == nil {
		return nil, d.errorf(root, "program: missing main")
	}
	main, err := d.block(fields["main"])
	if err != nil {
		return nil, err
	}
	return &ast.Program{Main: main}, nil
}

type decoder struct {
	enums map[string]typesystem.Enum
}

func (d *decoder) errorf(n *yaml.Node, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Line: n.Line, Column: n.Column, Msg: fmt.Sprintf(format, args...)}
}

// fields reads a mapping whose keys must all be among allowed.
func (d *decoder) fields(n *yaml.Node, what string, allowed ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, d.errorf(n, "%s: expected a mapping", what)
	}
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if !contains(allowed, key.Value) {
			return nil, d.errorf(key, "%s: unknown field %q", what, key.Value)
		}
		if _, dup := out[key.Value]; dup {
			return nil, d.errorf(key, "%s: duplicate field %q", what, key.Value)
		}
		out[key.Value] = val
	}
	return out, nil
}

// variant reads a one-key mapping and returns the key and its value.
func (d *decoder) variant(n *yaml.Node, what string) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, d.errorf(n, "%s: expected a mapping with exactly one key", what)
	}
	return n.Content[0].Value, n.Content[1], nil
}

func (d *decoder) require(n *yaml.Node, fields map[string]*yaml.Node, what string, names ...string) error {
	for _, name := range names {
		if fields[name] == nil {
			return d.errorf(n, "%s: missing %s", what, name)
		}
	}
	return nil
}

func (d *decoder) name(n *yaml.Node, what string) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Value == "" {
		return "", d.errorf(n, "%s: expected a name", what)
	}
	return n.Value, nil
}

func (d *decoder) block(n *yaml.Node) (*ast.Block, error) {
	fields, err := d.fields(n, "block", "stmts", "end")
	if err != nil {
		return nil, err
	}
	b := &ast.Block{}
	if s := fields["stmts"]; s != nil {
		if s.Kind != yaml.SequenceNode {
			return nil, d.errorf(s, "block: stmts must be a sequence")
		}
		b.Stmts = make([]ast.Statement, 0, len(s.Content))
		for _, item := range s.Content {
			stmt, err := d.statement(item)
			if err != nil {
				return nil, err
			}
			b.Stmts = append(b.Stmts, stmt)
		}
	}
	if e := fields["end"]; e != nil {
		end, err := d.term(e)
		if err != nil {
			return nil, err
		}
		b.End = end
	}
	return b, nil
}

func (d *decoder) statement(n *yaml.Node) (ast.Statement, error) {
	kind, body, err := d.variant(n, "statement")
	if err != nil {
		return nil, err
	}
	switch kind {
	case "expr":
		t, err := d.term(body)
		if err != nil {
			return nil, err
		}
		return &ast.TermSemicolon{Term: t}, nil
	case "let", "letmut", "mutate":
		return d.binding(kind, body)
	case "extern":
		return d.extern(body)
	}
	return nil, d.errorf(n.Content[0], "unknown statement %q", kind)
}

func (d *decoder) binding(kind string, n *yaml.Node) (ast.Statement, error) {
	fields, err := d.fields(n, kind, "name", "term")
	if err != nil {
		return nil, err
	}
	if err := d.require(n, fields, kind, "name", "term"); err != nil {
		return nil, err
	}
	name, err := d.name(fields["name"], kind)
	if err != nil {
		return nil, err
	}
	t, err := d.term(fields["term"])
	if err != nil {
		return nil, err
	}
	switch kind {
	case "let":
		return &ast.Let{Name: name, Term: t}, nil
	case "letmut":
		return &ast.LetMut{Name: name, Term: t}, nil
	default:
		return &ast.Mutate{Name: name, Term: t}, nil
	}
}

func (d *decoder) extern(n *yaml.Node) (ast.Statement, error) {
	fields, err := d.fields(n, "extern", "name", "type")
	if err != nil {
		return nil, err
	}
	if err := d.require(n, fields, "extern", "name", "type"); err != nil {
		return nil, err
	}
	name, err := d.name(fields["name"], "extern")
	if err != nil {
		return nil, err
	}
	tn := fields["type"]
	ty, err := typesystem.Parse(tn.Value, d.enums)
	if err != nil {
		e := d.errorf(tn, "extern %s: %v", name, err)
		e.Err = err
		return nil, e
	}
	return &ast.Extern{Name: name, Type: ty}, nil
}

func (d *decoder) term(n *yaml.Node) (ast.Term, error) {
	kind, body, err := d.variant(n, "term")
	if err != nil {
		return nil, err
	}
	switch kind {
	case "lit":
		v, err := strconv.ParseInt(body.Value, 10, 32)
		if body.Kind != yaml.ScalarNode || err != nil {
			return nil, d.errorf(body, "lit: %q is not a 32-bit integer", body.Value)
		}
		return &ast.Literal{Value: int32(v)}, nil
	case "var":
		name, err := d.name(body, "var")
		if err != nil {
			return nil, err
		}
		return &ast.Var{Name: name}, nil
	case "infix":
		return d.infix(body)
	case "call":
		return d.call(body)
	case "scope":
		b, err := d.block(body)
		if err != nil {
			return nil, err
		}
		return &ast.Scope{Block: b}, nil
	case "if":
		return d.ifTerm(body)
	case "while":
		return d.while(body)
	case "stmt":
		s, err := d.statement(body)
		if err != nil {
			return nil, err
		}
		return &ast.Stmt{Stmt: s}, nil
	}
	return nil, d.errorf(n.Content[0], "unknown term %q", kind)
}

func (d *decoder) infix(n *yaml.Node) (ast.Term, error) {
	fields, err := d.fields(n, "infix", "op", "left", "right")
	if err != nil {
		return nil, err
	}
	if err := d.require(n, fields, "infix", "op", "left", "right"); err != nil {
		return nil, err
	}
	op, ok := ast.LookupOperator(fields["op"].Value)
	if !ok {
		return nil, d.errorf(fields["op"], "infix: unknown operator %q", fields["op"].Value)
	}
	left, err := d.term(fields["left"])
	if err != nil {
		return nil, err
	}
	right, err := d.term(fields["right"])
	if err != nil {
		return nil, err
	}
	return &ast.Infix{Left: left, Op: op, Right: right}, nil
}

func (d *decoder) call(n *yaml.Node) (ast.Term, error) {
	fields, err := d.fields(n, "call", "name", "args")
	if err != nil {
		return nil, err
	}
	if err := d.require(n, fields, "call", "name"); err != nil {
		return nil, err
	}
	name, err := d.name(fields["name"], "call")
	if err != nil {
		return nil, err
	}
	c := &ast.Call{Func: ast.FunctionCall{Name: name}}
	if a := fields["args"]; a != nil {
		if a.Kind != yaml.SequenceNode {
			return nil, d.errorf(a, "call: args must be a sequence")
		}
		c.Args = make([]ast.Term, 0, len(a.Content))
		for _, item := range a.Content {
			arg, err := d.term(item)
			if err != nil {
				return nil, err
			}
			c.Args = append(c.Args, arg)
		}
	}
	return c, nil
}

func (d *decoder) ifTerm(n *yaml.Node) (ast.Term, error) {
	fields, err := d.fields(n, "if", "cond", "then", "else")
	if err != nil {
		return nil, err
	}
	if err := d.require(n, fields, "if", "cond", "then", "else"); err != nil {
		return nil, err
	}
	var parts [3]ast.Term
	for i, key := range []string{"cond", "then", "else"} {
		if parts[i], err = d.term(fields[key]); err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: parts[0], Then: parts[1], Else: parts[2]}, nil
}

func (d *decoder) while(n *yaml.Node) (ast.Term, error) {
	fields, err := d.fields(n, "while", "cond", "body")
	if err != nil {
		return nil, err
	}
	if err := d.require(n, fields, "while", "cond", "body"); err != nil {
		return nil, err
	}
	cond, err := d.term(fields["cond"])
	if err != nil {
		return nil, err
	}
	body, err := d.block(fields["body"])
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// IsDecodeError reports whether err came from a malformed document.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
