package prettyprinter

import (
	"bytes"
	"strconv"

	"github.com/AndyShiue/Ende/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// Operator precedence (higher = binds tighter). All operators are
// left-associative.
var operatorPrecedence = map[ast.Operator]int{
	ast.Eq:  3,
	ast.Ne:  3,
	ast.Lt:  4,
	ast.Gt:  4,
	ast.Le:  4,
	ast.Ge:  4,
	ast.Add: 7,
	ast.Sub: 7,
	ast.Mul: 8,
	ast.Div: 8,
}

func getPrecedence(op ast.Operator) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 10
}

// CodePrinter renders a bare tree as surface syntax. The top-level block of
// a program is printed without braces.
type CodePrinter struct {
	buf    bytes.Buffer
	indent int

	// notes are appended as line comments after the statement or trailing
	// term they belong to.
	notes map[ast.Node]string
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print renders any bare node.
func Print(n ast.Node) string {
	p := NewCodePrinter()
	n.Accept(p)
	return p.String()
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeln() {
	p.buf.WriteString("\n")
}

func (p *CodePrinter) writeNote(n ast.Node) {
	if note, ok := p.notes[n]; ok {
		p.write("  // " + note)
	}
}

// printTerm prints a term, adding parentheses only if needed
func (p *CodePrinter) printTerm(t ast.Term, parentPrec int, isRight bool) {
	switch e := t.(type) {
	case *ast.Infix:
		prec := getPrecedence(e.Op)
		needParens := prec < parentPrec || (prec == parentPrec && isRight)
		if needParens {
			p.write("(")
		}
		p.printTerm(e.Left, prec, false)
		p.write(" " + e.Op.String() + " ")
		p.printTerm(e.Right, prec, true)
		if needParens {
			p.write(")")
		}
	case *ast.If, *ast.While, *ast.Stmt:
		// Open-ended on the right; parenthesized inside operators.
		if parentPrec > 0 {
			p.write("(")
			t.Accept(p)
			p.write(")")
			return
		}
		t.Accept(p)
	default:
		t.Accept(p)
	}
}

// printBody prints the statements and trailing term of b, one per line,
// at the current indentation.
func (p *CodePrinter) printBody(b *ast.Block) {
	for _, stmt := range b.Stmts {
		p.writeIndent()
		stmt.Accept(p)
		p.writeNote(stmt)
		p.writeln()
	}
	if b.End != nil {
		p.writeIndent()
		p.printTerm(b.End, 0, false)
		p.writeNote(b.End)
		p.writeln()
	}
}

func (p *CodePrinter) VisitProgram(n *ast.Program) {
	p.printBody(n.Main)
}

func (p *CodePrinter) VisitBlock(n *ast.Block) {
	if len(n.Stmts) == 0 && n.End == nil {
		p.write("{}")
		return
	}
	p.write("{")
	p.writeln()
	p.indent++
	p.printBody(n)
	p.indent--
	p.writeIndent()
	p.write("}")
}

// Statements are printed without their terminator so that VisitStmt can
// reuse them; statement() adds it.

func (p *CodePrinter) statement(s ast.Statement) {
	switch s := s.(type) {
	case *ast.TermSemicolon:
		p.printTerm(s.Term, 0, false)
	case *ast.Let:
		p.write("let " + s.Name + " = ")
		p.printTerm(s.Term, 0, false)
	case *ast.LetMut:
		p.write("let mut " + s.Name + " = ")
		p.printTerm(s.Term, 0, false)
	case *ast.Mutate:
		p.write(s.Name + " = ")
		p.printTerm(s.Term, 0, false)
	case *ast.Extern:
		p.write("extern " + s.Name + ": " + s.Type.String())
	}
}

func (p *CodePrinter) VisitTermSemicolon(n *ast.TermSemicolon) {
	p.statement(n)
	p.write(";")
}

func (p *CodePrinter) VisitLet(n *ast.Let) {
	p.statement(n)
	p.write(";")
}

func (p *CodePrinter) VisitLetMut(n *ast.LetMut) {
	p.statement(n)
	p.write(";")
}

func (p *CodePrinter) VisitMutate(n *ast.Mutate) {
	p.statement(n)
	p.write(";")
}

func (p *CodePrinter) VisitExtern(n *ast.Extern) {
	p.statement(n)
	p.write(";")
}

func (p *CodePrinter) VisitLiteral(n *ast.Literal) {
	p.write(strconv.FormatInt(int64(n.Value), 10))
}

func (p *CodePrinter) VisitVar(n *ast.Var) {
	p.write(n.Name)
}

func (p *CodePrinter) VisitInfix(n *ast.Infix) {
	p.printTerm(n, 0, false)
}

func (p *CodePrinter) VisitCall(n *ast.Call) {
	p.write(n.Func.Name)
	p.write("(")
	for i, arg := range n.Args {
		if i > 0 {
			p.write(", ")
		}
		p.printTerm(arg, 0, false)
	}
	p.write(")")
}

func (p *CodePrinter) VisitScope(n *ast.Scope) {
	n.Block.Accept(p)
}

func (p *CodePrinter) VisitIf(n *ast.If) {
	p.write("if ")
	p.printTerm(n.Cond, 1, false)
	p.write(" then ")
	p.printTerm(n.Then, 1, false)
	p.write(" else ")
	p.printTerm(n.Else, 0, false)
}

func (p *CodePrinter) VisitWhile(n *ast.While) {
	p.write("while ")
	p.printTerm(n.Cond, 1, false)
	p.write(" ")
	n.Body.Accept(p)
}

// VisitStmt prints a statement used as a term, without its terminator.
func (p *CodePrinter) VisitStmt(n *ast.Stmt) {
	p.statement(n.Stmt)
}
