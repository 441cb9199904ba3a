package ast

import "github.com/AndyShiue/Ende/internal/typesystem"

// Node is the base interface for all bare syntax tree nodes.
// Trees arrive from the parser and are never mutated afterwards.
type Node interface {
	Accept(v Visitor)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
}

// Term is a Node that represents an expression.
type Term interface {
	Node
	termNode()
}

// Visitor walks a bare tree. Children are not visited automatically.
type Visitor interface {
	VisitProgram(p *Program)
	VisitBlock(b *Block)

	VisitTermSemicolon(s *TermSemicolon)
	VisitLet(s *Let)
	VisitLetMut(s *LetMut)
	VisitMutate(s *Mutate)
	VisitExtern(s *Extern)

	VisitLiteral(t *Literal)
	VisitVar(t *Var)
	VisitInfix(t *Infix)
	VisitCall(t *Call)
	VisitScope(t *Scope)
	VisitIf(t *If)
	VisitWhile(t *While)
	VisitStmt(t *Stmt)
}

// Program is the root node of every tree. It holds one top-level block.
type Program struct {
	Main *Block
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

// Block is a sequence of statements with an optional trailing term.
// { let x = 1; x + 2 }
type Block struct {
	Stmts []Statement
	End   Term // nil when the block has no trailing term
}

func (b *Block) Accept(v Visitor) { v.VisitBlock(b) }

// TermSemicolon is a term followed by the statement terminator.
// f(1);
type TermSemicolon struct {
	Term Term
}

func (s *TermSemicolon) Accept(v Visitor) { v.VisitTermSemicolon(s) }
func (s *TermSemicolon) statementNode()   {}

// Let binds an immutable name.
// let x = 1;
type Let struct {
	Name string
	Term Term
}

func (s *Let) Accept(v Visitor) { v.VisitLet(s) }
func (s *Let) statementNode()   {}

// LetMut binds a mutable name.
// let mut x = 1;
type LetMut struct {
	Name string
	Term Term
}

func (s *LetMut) Accept(v Visitor) { v.VisitLetMut(s) }
func (s *LetMut) statementNode()   {}

// Mutate assigns to an existing binding.
// x = 2;
type Mutate struct {
	Name string
	Term Term
}

func (s *Mutate) Accept(v Visitor) { v.VisitMutate(s) }
func (s *Mutate) statementNode()   {}

// Extern declares a name defined outside the program.
// extern f: (I32, I32, ) -> I32;
type Extern struct {
	Name string
	Type typesystem.Type
}

func (s *Extern) Accept(v Visitor) { v.VisitExtern(s) }
func (s *Extern) statementNode()   {}
