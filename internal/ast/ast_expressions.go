package ast

// Operator is an infix arithmetic or comparison operator. Every operator
// takes two I32 operands and produces an I32.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
	Lt
	Gt
	Le
	Ge
	Eq
	Ne
)

var operatorSymbols = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Lt:  "<",
	Gt:  ">",
	Le:  "<=",
	Ge:  ">=",
	Eq:  "==",
	Ne:  "!=",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorSymbols) {
		return "?"
	}
	return operatorSymbols[op]
}

// LookupOperator maps a symbol such as "+" to its Operator.
func LookupOperator(symbol string) (Operator, bool) {
	for i, s := range operatorSymbols {
		if s == symbol {
			return Operator(i), true
		}
	}
	return 0, false
}

// FunctionCall is the head of a call: just the callee name. It is resolved
// against the environment, not linked to a declaration by the parser.
type FunctionCall struct {
	Name string
}

// Literal is an integer literal.
type Literal struct {
	Value int32
}

func (t *Literal) Accept(v Visitor) { v.VisitLiteral(t) }
func (t *Literal) termNode()        {}

// Var is a variable reference.
type Var struct {
	Name string
}

func (t *Var) Accept(v Visitor) { v.VisitVar(t) }
func (t *Var) termNode()        {}

// Infix is a binary operation.
// left + right
type Infix struct {
	Left  Term
	Op    Operator
	Right Term
}

func (t *Infix) Accept(v Visitor) { v.VisitInfix(t) }
func (t *Infix) termNode()        {}

// Call applies a function to an ordered argument list.
// f(a, b)
type Call struct {
	Func FunctionCall
	Args []Term
}

func (t *Call) Accept(v Visitor) { v.VisitCall(t) }
func (t *Call) termNode()        {}

// Scope is a block used as a value.
// { let x = 1; x }
type Scope struct {
	Block *Block
}

func (t *Scope) Accept(v Visitor) { v.VisitScope(t) }
func (t *Scope) termNode()        {}

// If is a conditional term. Both branches are required.
// if c then t else e
type If struct {
	Cond Term
	Then Term
	Else Term
}

func (t *If) Accept(v Visitor) { v.VisitIf(t) }
func (t *If) termNode()        {}

// While is a loop. Its value is the value of its body block.
// while c { ... }
type While struct {
	Cond Term
	Body *Block
}

func (t *While) Accept(v Visitor) { v.VisitWhile(t) }
func (t *While) termNode()        {}

// Stmt wraps a statement so it can appear where a term is expected.
type Stmt struct {
	Stmt Statement
}

func (t *Stmt) Accept(v Visitor) { v.VisitStmt(t) }
func (t *Stmt) termNode()        {}
