package tagged

import (
	"github.com/AndyShiue/Ende/internal/ast"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

// Statement is a tagged statement.
type Statement[T any] interface {
	Node[T]
	Untag() ast.Statement
	statementNode()
}

type TermSemicolon[T any] struct {
	Tag  T
	Term Term[T]
}

func (s *TermSemicolon[T]) GetTag() T      { return s.Tag }
func (s *TermSemicolon[T]) statementNode() {}
func (s *TermSemicolon[T]) Untag() ast.Statement {
	return &ast.TermSemicolon{Term: s.Term.Untag()}
}

type Let[T any] struct {
	Tag  T
	Name string
	Term Term[T]
}

func (s *Let[T]) GetTag() T      { return s.Tag }
func (s *Let[T]) statementNode() {}
func (s *Let[T]) Untag() ast.Statement {
	return &ast.Let{Name: s.Name, Term: s.Term.Untag()}
}

type LetMut[T any] struct {
	Tag  T
	Name string
	Term Term[T]
}

func (s *LetMut[T]) GetTag() T      { return s.Tag }
func (s *LetMut[T]) statementNode() {}
func (s *LetMut[T]) Untag() ast.Statement {
	return &ast.LetMut{Name: s.Name, Term: s.Term.Untag()}
}

type Mutate[T any] struct {
	Tag  T
	Name string
	Term Term[T]
}

func (s *Mutate[T]) GetTag() T      { return s.Tag }
func (s *Mutate[T]) statementNode() {}
func (s *Mutate[T]) Untag() ast.Statement {
	return &ast.Mutate{Name: s.Name, Term: s.Term.Untag()}
}

// Extern keeps the declared type regardless of the payload type.
type Extern[T any] struct {
	Tag  T
	Name string
	Type typesystem.Type
}

func (s *Extern[T]) GetTag() T      { return s.Tag }
func (s *Extern[T]) statementNode() {}
func (s *Extern[T]) Untag() ast.Statement {
	return &ast.Extern{Name: s.Name, Type: s.Type}
}
