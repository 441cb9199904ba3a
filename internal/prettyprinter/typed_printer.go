package prettyprinter

import (
	"github.com/AndyShiue/Ende/internal/ast"
	"github.com/AndyShiue/Ende/internal/tagged"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

// TypedPrinter renders a checked program as source code with the type of
// every statement and trailing term as a line comment:
//
//	let x = 1;
//	x + 2;  // : Unit
//	x  // : I32
//
// Statements tagged Forbidden (bindings and extern declarations) carry no
// comment.
type TypedPrinter struct{}

func NewTypedPrinter() *TypedPrinter {
	return &TypedPrinter{}
}

func (tp *TypedPrinter) Print(p *tagged.Program[typesystem.Type]) string {
	bare := p.Untag()
	cp := NewCodePrinter()
	cp.notes = make(map[ast.Node]string)
	collectBlock(p.Main, bare.Main, cp.notes)
	bare.Accept(cp)
	return cp.String()
}

// The collect functions walk a tagged tree and its erasure in lockstep and
// record the tag of every statement and trailing term under the bare node.

func note(notes map[ast.Node]string, n ast.Node, ty typesystem.Type) {
	if ty == nil || typesystem.IsForbidden(ty) {
		return
	}
	notes[n] = ": " + ty.String()
}

func collectBlock(tb *tagged.Block[typesystem.Type], bb *ast.Block, notes map[ast.Node]string) {
	for i, s := range tb.Stmts {
		note(notes, bb.Stmts[i], s.GetTag())
		collectStatement(s, bb.Stmts[i], notes)
	}
	if tb.End != nil {
		note(notes, bb.End, tb.End.GetTag())
		collectTerm(tb.End, bb.End, notes)
	}
}

func collectStatement(ts tagged.Statement[typesystem.Type], bs ast.Statement, notes map[ast.Node]string) {
	switch s := ts.(type) {
	case *tagged.TermSemicolon[typesystem.Type]:
		collectTerm(s.Term, bs.(*ast.TermSemicolon).Term, notes)
	case *tagged.Let[typesystem.Type]:
		collectTerm(s.Term, bs.(*ast.Let).Term, notes)
	case *tagged.LetMut[typesystem.Type]:
		collectTerm(s.Term, bs.(*ast.LetMut).Term, notes)
	case *tagged.Mutate[typesystem.Type]:
		collectTerm(s.Term, bs.(*ast.Mutate).Term, notes)
	}
}

func collectTerm(tt tagged.Term[typesystem.Type], bt ast.Term, notes map[ast.Node]string) {
	switch t := tt.(type) {
	case *tagged.Infix[typesystem.Type]:
		b := bt.(*ast.Infix)
		collectTerm(t.Left, b.Left, notes)
		collectTerm(t.Right, b.Right, notes)
	case *tagged.Call[typesystem.Type]:
		b := bt.(*ast.Call)
		for i, arg := range t.Args {
			collectTerm(arg, b.Args[i], notes)
		}
	case *tagged.Scope[typesystem.Type]:
		collectBlock(t.Block, bt.(*ast.Scope).Block, notes)
	case *tagged.If[typesystem.Type]:
		b := bt.(*ast.If)
		collectTerm(t.Cond, b.Cond, notes)
		collectTerm(t.Then, b.Then, notes)
		collectTerm(t.Else, b.Else, notes)
	case *tagged.While[typesystem.Type]:
		b := bt.(*ast.While)
		collectTerm(t.Cond, b.Cond, notes)
		collectBlock(t.Body, b.Body, notes)
	case *tagged.Stmt[typesystem.Type]:
		collectStatement(t.Stmt, bt.(*ast.Stmt).Stmt, notes)
	}
}
