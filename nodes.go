package numdsl

import (
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of a program. The set of node
// types is closed: *Number, *Variable, *BinaryOp, *FunctionCall, *Assignment,
// and *Print.
type Node interface {
	String() string
	node()
}

// Expr is a node that evaluates to a value.
type Expr interface {
	Node
	expr()
}

// Stmt is a top-level statement of a program.
type Stmt interface {
	Node
	stmt()
}

// Number is a numeric literal.
type Number struct {
	Value float64
	// Integral is true when the literal had no fractional part.
	Integral bool
}

// Variable is a reference to a stored variable or a constant.
type Variable struct {
	Name string
}

// BinaryOp is an arithmetic operation on two expressions.
type BinaryOp struct {
	Left  Expr
	Op    Op
	Right Expr
}

// FunctionCall is a call of a math function.
type FunctionCall struct {
	Func string
	Args []Expr
}

// Assignment is the statement set Name to Value;.
type Assignment struct {
	Name  string
	Value Expr
}

// Print is the statement show Name;.
type Print struct {
	Name string
}

func (*Number) node()       {}
func (*Variable) node()     {}
func (*BinaryOp) node()     {}
func (*FunctionCall) node() {}
func (*Assignment) node()   {}
func (*Print) node()        {}

func (*Number) expr()       {}
func (*Variable) expr()     {}
func (*BinaryOp) expr()     {}
func (*FunctionCall) expr() {}

func (*Assignment) stmt() {}
func (*Print) stmt()      {}

// Op is a binary arithmetic operator.
type Op int8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
)

var opstrs = [...]string{
	OpNone: "?",
	OpAdd:  "+",
	OpSub:  "-",
	OpMul:  "*",
	OpDiv:  "/",
	OpPow:  "**",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opstrs) {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return opstrs[op]
}

// parseOp gets the operator for an operator token's text. If there is no such
// operator, the result is OpNone.
func parseOp(text string) Op {
	switch text {
	case "+":
		return OpAdd
	case "-":
		return OpSub
	case "*":
		return OpMul
	case "/":
		return OpDiv
	case "**":
		return OpPow
	default:
		return OpNone
	}
}

func (n *Number) String() string {
	s := strconv.FormatFloat(n.Value, 'f', -1, 64)
	if !n.Integral && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (n *Variable) String() string {
	return n.Name
}

// String renders the operation with every operand parenthesized except
// literals and names, so that grouping is explicit.
func (n *BinaryOp) String() string {
	var b strings.Builder
	fmtOperand(&b, n.Left)
	b.WriteByte(' ')
	b.WriteString(n.Op.String())
	b.WriteByte(' ')
	fmtOperand(&b, n.Right)
	return b.String()
}

func fmtOperand(b *strings.Builder, e Expr) {
	if _, ok := e.(*BinaryOp); ok {
		b.WriteByte('(')
		b.WriteString(e.String())
		b.WriteByte(')')
		return
	}
	b.WriteString(e.String())
}

func (n *FunctionCall) String() string {
	var b strings.Builder
	b.WriteString(n.Func)
	b.WriteByte('(')
	for i, arg := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (n *Assignment) String() string {
	return "set " + n.Name + " to " + n.Value.String() + ";"
}

func (n *Print) String() string {
	return "show " + n.Name + ";"
}

// Format renders a program as source text, one statement per line.
func Format(stmts []Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	return b.String()
}
