// Package tagged defines the annotation contract between a bare syntax tree
// and a tagged tree that mirrors it node for node, carrying one payload value
// (a tag) per node.
//
// The contract has two halves. The read/erase half (GetTag and Untag) is
// implemented once here for every payload type and never fails: erasing the
// tags of a tagged tree yields a bare tree equal to the one it was built
// from. The tag half is the Annotator interface, implemented once per
// payload: the type checker in package analyzer is the working one, the
// position payload in package source is a declared extension point.
package tagged

import (
	"github.com/AndyShiue/Ende/internal/ast"
	"github.com/AndyShiue/Ende/internal/diagnostics"
	"github.com/AndyShiue/Ende/internal/symbols"
)

// Annotator produces tagged nodes from bare nodes, one method per node
// category. Each method returns either a tagged node or a non-empty list of
// diagnostics, never both. Methods may read and extend env.
type Annotator[T any] interface {
	TagProgram(p *ast.Program, env *symbols.Environment[T]) (*Program[T], []*diagnostics.DiagnosticError)
	TagBlock(b *ast.Block, env *symbols.Environment[T]) (*Block[T], []*diagnostics.DiagnosticError)
	TagStatement(s ast.Statement, env *symbols.Environment[T]) (Statement[T], []*diagnostics.DiagnosticError)
	TagTerm(t ast.Term, env *symbols.Environment[T]) (Term[T], []*diagnostics.DiagnosticError)
	TagFunctionCall(f ast.FunctionCall, env *symbols.Environment[T]) (*FunctionCall[T], []*diagnostics.DiagnosticError)
}

// Node is implemented by every tagged node.
type Node[T any] interface {
	GetTag() T
}

// Annotate runs a on a whole program. A nil env starts from an empty environment.
func Annotate[T any](a Annotator[T], p *ast.Program, env *symbols.Environment[T]) (*Program[T], []*diagnostics.DiagnosticError) {
	if env == nil {
		env = symbols.NewEnvironment[T]()
	}
	return a.TagProgram(p, env)
}

// Program is the tagged root.
type Program[T any] struct {
	Tag  T
	Main *Block[T]
}

func (p *Program[T]) GetTag() T { return p.Tag }

func (p *Program[T]) Untag() *ast.Program {
	return &ast.Program{Main: p.Main.Untag()}
}

// Block is a tagged statement sequence with optional trailing term.
type Block[T any] struct {
	Tag   T
	Stmts []Statement[T]
	End   Term[T] // nil when the bare block has no trailing term
}

func (b *Block[T]) GetTag() T { return b.Tag }

func (b *Block[T]) Untag() *ast.Block {
	var stmts []ast.Statement
	if b.Stmts != nil {
		stmts = make([]ast.Statement, len(b.Stmts))
		for i, s := range b.Stmts {
			stmts[i] = s.Untag()
		}
	}
	var end ast.Term
	if b.End != nil {
		end = b.End.Untag()
	}
	return &ast.Block{Stmts: stmts, End: end}
}

// FunctionCall is the tagged head of a call.
type FunctionCall[T any] struct {
	Tag  T
	Name string
}

func (f *FunctionCall[T]) GetTag() T { return f.Tag }

func (f *FunctionCall[T]) Untag() ast.FunctionCall {
	return ast.FunctionCall{Name: f.Name}
}
