package tagged

import "github.com/AndyShiue/Ende/internal/ast"

// Term is a tagged term.
type Term[T any] interface {
	Node[T]
	Untag() ast.Term
	termNode()
}

type Literal[T any] struct {
	Tag   T
	Value int32
}

func (t *Literal[T]) GetTag() T       { return t.Tag }
func (t *Literal[T]) termNode()       {}
func (t *Literal[T]) Untag() ast.Term { return &ast.Literal{Value: t.Value} }

type Var[T any] struct {
	Tag  T
	Name string
}

func (t *Var[T]) GetTag() T       { return t.Tag }
func (t *Var[T]) termNode()       {}
func (t *Var[T]) Untag() ast.Term { return &ast.Var{Name: t.Name} }

type Infix[T any] struct {
	Tag   T
	Left  Term[T]
	Op    ast.Operator
	Right Term[T]
}

func (t *Infix[T]) GetTag() T { return t.Tag }
func (t *Infix[T]) termNode() {}
func (t *Infix[T]) Untag() ast.Term {
	return &ast.Infix{Left: t.Left.Untag(), Op: t.Op, Right: t.Right.Untag()}
}

type Call[T any] struct {
	Tag  T
	Func *FunctionCall[T]
	Args []Term[T]
}

func (t *Call[T]) GetTag() T { return t.Tag }
func (t *Call[T]) termNode() {}
func (t *Call[T]) Untag() ast.Term {
	var args []ast.Term
	if t.Args != nil {
		args = make([]ast.Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.Untag()
		}
	}
	return &ast.Call{Func: t.Func.Untag(), Args: args}
}

type Scope[T any] struct {
	Tag   T
	Block *Block[T]
}

func (t *Scope[T]) GetTag() T       { return t.Tag }
func (t *Scope[T]) termNode()       {}
func (t *Scope[T]) Untag() ast.Term { return &ast.Scope{Block: t.Block.Untag()} }

type If[T any] struct {
	Tag  T
	Cond Term[T]
	Then Term[T]
	Else Term[T]
}

func (t *If[T]) GetTag() T { return t.Tag }
func (t *If[T]) termNode() {}
func (t *If[T]) Untag() ast.Term {
	return &ast.If{Cond: t.Cond.Untag(), Then: t.Then.Untag(), Else: t.Else.Untag()}
}

type While[T any] struct {
	Tag  T
	Cond Term[T]
	Body *Block[T]
}

func (t *While[T]) GetTag() T { return t.Tag }
func (t *While[T]) termNode() {}
func (t *While[T]) Untag() ast.Term {
	return &ast.While{Cond: t.Cond.Untag(), Body: t.Body.Untag()}
}

// Stmt wraps a tagged statement in term position. It carries its own tag;
// the wrapped statement keeps the statement's tag.
type Stmt[T any] struct {
	Tag  T
	Stmt Statement[T]
}

func (t *Stmt[T]) GetTag() T       { return t.Tag }
func (t *Stmt[T]) termNode()       {}
func (t *Stmt[T]) Untag() ast.Term { return &ast.Stmt{Stmt: t.Stmt.Untag()} }
