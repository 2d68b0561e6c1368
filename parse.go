package numdsl

import (
	"strconv"
	"strings"
)

// program      = { statement } ;
// statement    = assignment | print ;
// assignment   = "set" ident "to" expression ";" ;
// print        = "show" ident ";" ;
// expression   = additive ;
// additive     = multiplicative { ( "+" | "-" ) multiplicative } ;
// multiplicative = exponent { ( "*" | "/" ) exponent } ;
// exponent     = term { "**" term } ;
// term         = number | ident | "(" expression ")"
//              | function "(" expression { "," expression } ")" ;
//
// Every binary level folds left to right, including **.

// parser holds the token stream for one parse.
type parser struct {
	toks []Token
	pos  int
}

// Parse builds the statements of a program from its tokens. Every token must
// belong to a statement. The error, if any, is a *ParseError.
func Parse(toks []Token) ([]Stmt, error) {
	p := parser{toks: toks}
	var stmts []Stmt
	for !p.done() {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func (p *parser) done() bool {
	return p.pos >= len(p.toks)
}

// peek returns the current token. ok is false at the end of input.
func (p *parser) peek() (tok Token, ok bool) {
	if p.done() {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

// expect consumes the current token if it has the given kind.
func (p *parser) expect(kind TokenKind) (Token, error) {
	tok, ok := p.peek()
	if !ok || tok.Kind != kind {
		return tok, p.unexpected(kind.String())
	}
	p.pos++
	return tok, nil
}

// unexpected creates an error for the current token given a description of
// what should have been there.
func (p *parser) unexpected(want string) error {
	tok, ok := p.peek()
	return &ParseError{Want: want, Got: tok, EOF: !ok}
}

// peekOp returns the operator at the current token if it is one of ops.
func (p *parser) peekOp(ops ...Op) Op {
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenOperator {
		return OpNone
	}
	op := parseOp(tok.Text)
	for _, o := range ops {
		if o == op {
			return op
		}
	}
	return OpNone
}

func (p *parser) statement() (Stmt, error) {
	tok, ok := p.peek()
	switch {
	case ok && tok.Kind == TokenSet:
		return p.assignment()
	case ok && tok.Kind == TokenShow:
		return p.print()
	default:
		return nil, p.unexpected(WantStatement)
	}
}

func (p *parser) assignment() (Stmt, error) {
	if _, err := p.expect(TokenSet); err != nil {
		return nil, err
	}
	name, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenTo); err != nil {
		return nil, err
	}
	v, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return &Assignment{Name: name.Text, Value: v}, nil
}

func (p *parser) print() (Stmt, error) {
	if _, err := p.expect(TokenShow); err != nil {
		return nil, err
	}
	name, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return &Print{Name: name.Text}, nil
}

func (p *parser) expression() (Expr, error) {
	return p.additive()
}

// binary parses one precedence level: operands from next joined by any of
// ops, folded to the left.
func (p *parser) binary(next func() (Expr, error), ops ...Op) (Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peekOp(ops...)
		if op == OpNone {
			return left, nil
		}
		p.pos++
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Left: left, Op: op, Right: right}
	}
}

func (p *parser) additive() (Expr, error) {
	return p.binary(p.multiplicative, OpAdd, OpSub)
}

func (p *parser) multiplicative() (Expr, error) {
	return p.binary(p.exponent, OpMul, OpDiv)
}

func (p *parser) exponent() (Expr, error) {
	return p.binary(p.term, OpPow)
}

func (p *parser) term() (Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.unexpected(WantExpression)
	}
	switch tok.Kind {
	case TokenNumber:
		p.pos++
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			// The lexer only produces digit strings, which always parse
			// apart from overflow to ±Inf, and ParseFloat reports that
			// with the infinity as its result.
			if ne, _ := err.(*strconv.NumError); ne == nil || ne.Err != strconv.ErrRange {
				panic("numdsl: invalid number token " + strconv.Quote(tok.Text))
			}
		}
		return &Number{Value: v, Integral: !strings.Contains(tok.Text, ".")}, nil
	case TokenIdent:
		p.pos++
		return &Variable{Name: tok.Text}, nil
	case TokenLParen:
		p.pos++
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return e, nil
	case TokenFunction:
		return p.call()
	default:
		return nil, p.unexpected(WantExpression)
	}
}

// call parses a function call with one or more arguments.
func (p *parser) call() (Expr, error) {
	name, err := p.expect(TokenFunction)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	var args []Expr
	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if tok, ok := p.peek(); ok && tok.Kind == TokenComma {
			p.pos++
			continue
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return &FunctionCall{Func: name.Text, Args: args}, nil
	}
}
