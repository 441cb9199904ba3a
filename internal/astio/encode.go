package astio

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/AndyShiue/Ende/internal/ast"
)

// Encode writes a program in the form Decode reads.
func Encode(p *ast.Program) ([]byte, error) {
	root := mapping(0, "main", encodeBlock(p.Main))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encoding program: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding program: %w", err)
	}
	return buf.Bytes(), nil
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func quoted(s string) *yaml.Node {
	n := str(s)
	n.Style = yaml.DoubleQuotedStyle
	return n
}

// mapping builds a mapping from alternating keys and values.
func mapping(style yaml.Style, kv ...interface{}) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Style: style}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Content = append(n.Content, str(kv[i].(string)), kv[i+1].(*yaml.Node))
	}
	return n
}

func sequence(items []*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Content: items}
}

func encodeBlock(b *ast.Block) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	if b.Stmts != nil {
		items := make([]*yaml.Node, len(b.Stmts))
		for i, s := range b.Stmts {
			items[i] = encodeStatement(s)
		}
		seq := sequence(items)
		if len(items) == 0 {
			seq.Style = yaml.FlowStyle
		}
		n.Content = append(n.Content, str("stmts"), seq)
	}
	if b.End != nil {
		n.Content = append(n.Content, str("end"), encodeTerm(b.End))
	}
	if len(n.Content) == 0 {
		n.Style = yaml.FlowStyle
	}
	return n
}

func encodeStatement(s ast.Statement) *yaml.Node {
	switch s := s.(type) {
	case *ast.TermSemicolon:
		return mapping(0, "expr", encodeTerm(s.Term))
	case *ast.Let:
		return mapping(0, "let", mapping(0, "name", str(s.Name), "term", encodeTerm(s.Term)))
	case *ast.LetMut:
		return mapping(0, "letmut", mapping(0, "name", str(s.Name), "term", encodeTerm(s.Term)))
	case *ast.Mutate:
		return mapping(0, "mutate", mapping(0, "name", str(s.Name), "term", encodeTerm(s.Term)))
	case *ast.Extern:
		return mapping(0, "extern", mapping(yaml.FlowStyle, "name", str(s.Name), "type", quoted(s.Type.String())))
	}
	panic(fmt.Sprintf("astio: unexpected statement %T", s))
}

func encodeTerm(t ast.Term) *yaml.Node {
	switch t := t.(type) {
	case *ast.Literal:
		lit := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(t.Value), 10)}
		return mapping(yaml.FlowStyle, "lit", lit)
	case *ast.Var:
		return mapping(yaml.FlowStyle, "var", str(t.Name))
	case *ast.Infix:
		return mapping(0, "infix", mapping(0,
			"op", quoted(t.Op.String()),
			"left", encodeTerm(t.Left),
			"right", encodeTerm(t.Right),
		))
	case *ast.Call:
		body := mapping(0, "name", str(t.Func.Name))
		if t.Args != nil {
			items := make([]*yaml.Node, len(t.Args))
			for i, a := range t.Args {
				items[i] = encodeTerm(a)
			}
			seq := sequence(items)
			if len(items) == 0 {
				seq.Style = yaml.FlowStyle
			}
			body.Content = append(body.Content, str("args"), seq)
		}
		return mapping(0, "call", body)
	case *ast.Scope:
		return mapping(0, "scope", encodeBlock(t.Block))
	case *ast.If:
		return mapping(0, "if", mapping(0,
			"cond", encodeTerm(t.Cond),
			"then", encodeTerm(t.Then),
			"else", encodeTerm(t.Else),
		))
	case *ast.While:
		return mapping(0, "while", mapping(0,
			"cond", encodeTerm(t.Cond),
			"body", encodeBlock(t.Body),
		))
	case *ast.Stmt:
		return mapping(0, "stmt", encodeStatement(t.Stmt))
	}
	panic(fmt.Sprintf("astio: unexpected term %T", t))
}
