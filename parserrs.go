package numdsl

import (
	"errors"
	"strconv"
)

var (
	// ErrLex is the category of errors from Tokenize.
	ErrLex = errors.New("lex error")
	// ErrParse is the category of errors from Parse.
	ErrParse = errors.New("parse error")
	// ErrRuntime is the category of errors from interpreting a program.
	ErrRuntime = errors.New("runtime error")
)

// Descriptions used in ParseError.Want when no single token kind is expected.
const (
	WantStatement  = "statement"
	WantExpression = "expression"
)

// ParseError indicates a missing or unexpected token. It unwraps to ErrParse.
type ParseError struct {
	// Want is the token kind the parser required, or WantStatement or
	// WantExpression where several kinds could begin the construct.
	Want string
	// Got is the token found instead. It is the zero Token if EOF is set.
	Got Token
	// EOF indicates that the input ended where a token was required.
	EOF bool
}

func (err *ParseError) Error() string {
	found := "end of input"
	if !err.EOF {
		found = err.Got.Kind.String() + " " + strconv.Quote(err.Got.Text)
	}
	return "expected " + err.Want + ", found " + found
}

func (err *ParseError) Unwrap() error {
	return ErrParse
}
