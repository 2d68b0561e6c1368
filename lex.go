package numdsl

import (
	"strconv"
	"strings"
	"unicode"
)

// Token is a classified lexical unit of a program.
type Token struct {
	Kind TokenKind
	Text string
}

func (t Token) String() string {
	return t.Kind.String() + ":" + strconv.Quote(t.Text)
}

// TokenKind is the class of a token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenSet is the keyword set.
	TokenSet
	// TokenTo is the keyword to.
	TokenTo
	// TokenShow is the keyword show.
	TokenShow
	// TokenIdent is a variable name. Identifiers begin with an uppercase
	// ASCII letter.
	TokenIdent
	// TokenNumber is an unsigned decimal literal without exponent.
	TokenNumber
	// TokenOperator is one of + - * / **.
	TokenOperator
	// TokenFunction is the name of a math function.
	TokenFunction
	TokenLParen
	TokenRParen
	TokenSemicolon
	TokenComma
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// functionNames lists the names the lexer recognizes as functions.
var functionNames = []string{
	"sin", "cos", "tan", "sqrt", "log", "exp", "asin", "acos", "atan",
	"ceil", "floor", "fabs", "factorial", "pow",
}

// Functions returns the names of the functions programs can call.
func Functions() []string {
	return append([]string(nil), functionNames...)
}

// CommentStart begins a comment that runs to the end of the line.
const CommentStart = "$$"

// matcher reports the length in runes of a match anchored at src[pos], or 0
// if there is none.
type matcher func(src []rune, pos int) int

// patterns is the lexer's priority list. The first pattern to match at a
// position wins, so keywords precede identifiers and ** precedes *.
var patterns = []struct {
	kind  TokenKind
	match matcher
}{
	{TokenSet, word("set")},
	{TokenTo, word("to")},
	{TokenShow, word("show")},
	{TokenIdent, scanIdent},
	{TokenNumber, scanNum},
	{TokenOperator, scanOp},
	{TokenFunction, scanFunc},
	{TokenLParen, char('(')},
	{TokenRParen, char(')')},
	{TokenSemicolon, char(';')},
	{TokenNone, scanComment},
	{TokenComma, char(',')},
}

// Tokenize splits src into tokens. Whitespace and comments are discarded.
// The error, if any, is a *LexError.
func Tokenize(src string) ([]Token, error) {
	rs := []rune(src)
	var toks []Token
	pos := 0
scan:
	for pos < len(rs) {
		if unicode.IsSpace(rs[pos]) {
			pos++
			continue
		}
		for _, p := range patterns {
			n := p.match(rs, pos)
			if n == 0 {
				continue
			}
			if p.kind != TokenNone {
				toks = append(toks, Token{Kind: p.kind, Text: string(rs[pos : pos+n])})
			}
			pos += n
			continue scan
		}
		return nil, &LexError{Pos: pos, Char: rs[pos]}
	}
	return toks, nil
}

// isWord reports whether r counts as a word character for keyword and name
// boundaries.
func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// boundary reports whether there is a word boundary between src[pos-1] and
// src[pos]. Only called where one side is known to be a word character.
func boundary(src []rune, pos int) bool {
	if pos <= 0 || pos >= len(src) {
		return true
	}
	return isWord(src[pos-1]) != isWord(src[pos])
}

func hasPrefix(src []rune, pos int, s string) bool {
	for _, r := range s {
		if pos >= len(src) || src[pos] != r {
			return false
		}
		pos++
	}
	return true
}

func word(w string) matcher {
	n := len(w)
	return func(src []rune, pos int) int {
		if !boundary(src, pos) || !hasPrefix(src, pos, w) || !boundary(src, pos+n) {
			return 0
		}
		return n
	}
}

func char(c rune) matcher {
	return func(src []rune, pos int) int {
		if src[pos] != c {
			return 0
		}
		return 1
	}
}

func isASCIIAlnum(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || isDigit(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func scanIdent(src []rune, pos int) int {
	if !boundary(src, pos) || src[pos] < 'A' || src[pos] > 'Z' {
		return 0
	}
	end := pos + 1
	for end < len(src) && isASCIIAlnum(src[end]) {
		end++
	}
	// A name running into other word characters, e.g. A_b, is not a name.
	if !boundary(src, end) {
		return 0
	}
	return end - pos
}

func scanNum(src []rune, pos int) int {
	end := pos
	for end < len(src) && isDigit(src[end]) {
		end++
	}
	if end == pos {
		return 0
	}
	if end+1 < len(src) && src[end] == '.' && isDigit(src[end+1]) {
		end += 2
		for end < len(src) && isDigit(src[end]) {
			end++
		}
	}
	return end - pos
}

func scanOp(src []rune, pos int) int {
	if hasPrefix(src, pos, "**") {
		return 2
	}
	if strings.ContainsRune("+-*/", src[pos]) {
		return 1
	}
	return 0
}

func scanFunc(src []rune, pos int) int {
	if !boundary(src, pos) {
		return 0
	}
	for _, name := range functionNames {
		n := len(name)
		if hasPrefix(src, pos, name) && boundary(src, pos+n) {
			return n
		}
	}
	return 0
}

func scanComment(src []rune, pos int) int {
	if !hasPrefix(src, pos, CommentStart) {
		return 0
	}
	end := pos + len(CommentStart)
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return end - pos
}

// LexError indicates a character that begins no token.
type LexError struct {
	// Pos is the 0-based rune offset of the character in the source.
	Pos int
	// Char is the offending character.
	Char rune
}

func (err *LexError) Error() string {
	return "illegal character at position " + strconv.Itoa(err.Pos) + ": " + strconv.QuoteRune(err.Char)
}

func (err *LexError) Unwrap() error {
	return ErrLex
}
