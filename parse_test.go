package numdsl

import (
	"errors"
	"reflect"
	"regexp"
	"testing"
)

func mustTokenize(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("%q failed to scan: %v", src, err)
	}
	return toks
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "set X to 1;", "set X to 1;"},
		{"real", "set X to 1.50;", "set X to 1.5;"},
		{"real-whole", "set X to 2.0;", "set X to 2.0;"},
		{"ident", "set X to Y;", "set X to Y;"},
		{"paren", "set X to (Y);", "set X to Y;"},
		{"multi", "set X to (((Y)));", "set X to Y;"},
		{"show", "show X;", "show X;"},

		{"add", "set X to A+B;", "set X to A + B;"},
		{"sub", "set X to A-B;", "set X to A - B;"},
		{"mul", "set X to A*B;", "set X to A * B;"},
		{"div", "set X to A/B;", "set X to A / B;"},
		{"pow", "set X to A**B;", "set X to A ** B;"},

		{"add4", "set X to W+X+Y+Z;", "set X to ((W + X) + Y) + Z;"},
		{"sub4", "set X to W-X-Y-Z;", "set X to ((W - X) - Y) - Z;"},
		{"mul4", "set X to W*X*Y*Z;", "set X to ((W * X) * Y) * Z;"},
		{"div4", "set X to W/X/Y/Z;", "set X to ((W / X) / Y) / Z;"},
		{"pow4", "set X to W**X**Y**Z;", "set X to ((W ** X) ** Y) ** Z;"},
		{"addsub", "set X to A-B+C;", "set X to (A - B) + C;"},
		{"muldiv", "set X to A/B*C;", "set X to (A / B) * C;"},

		{"desc", "set X to W**X*Y+Z;", "set X to ((W ** X) * Y) + Z;"},
		{"asc", "set X to W+X*Y**Z;", "set X to W + (X * (Y ** Z));"},
		{"group", "set X to (A+B)*C;", "set X to (A + B) * C;"},
		{"group-pow", "set X to A**(B**C);", "set X to A ** (B ** C);"},

		{"call1", "set X to sqrt(16);", "set X to sqrt(16);"},
		{"call2", "set X to pow(2, 3);", "set X to pow(2, 3);"},
		{"call-exprs", "set X to pow(A+1, B*2);", "set X to pow(A + 1, B * 2);"},
		{"call-nested", "set X to sin(cos(PI));", "set X to sin(cos(PI));"},
		{"call-pow", "set X to sqrt(A)**2;", "set X to sqrt(A) ** 2;"},
		{"call-many", "set X to log(1, 2, 3);", "set X to log(1, 2, 3);"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stmts, err := Parse(mustTokenize(t, c.src))
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			if len(stmts) != 1 {
				t.Fatalf("%q parsed to %d statements: %v", c.src, len(stmts), stmts)
			}
			if got := stmts[0].String(); got != c.want {
				t.Errorf("mismatched AST:\n\t%q parses as %q\n\twant %q", c.src, got, c.want)
			}
		})
	}
}

func TestParseExact(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		stmts []Stmt
	}{
		{
			name:  "empty",
			src:   "",
			stmts: nil,
		},
		{
			name:  "comment",
			src:   "$$ nothing",
			stmts: nil,
		},
		{
			name: "assign-show",
			src:  "set A to 5; show A;",
			stmts: []Stmt{
				&Assignment{Name: "A", Value: &Number{Value: 5, Integral: true}},
				&Print{Name: "A"},
			},
		},
		{
			name: "pow-left",
			src:  "set A to 2 ** 3 ** 2;",
			stmts: []Stmt{
				&Assignment{
					Name: "A",
					Value: &BinaryOp{
						Left: &BinaryOp{
							Left:  &Number{Value: 2, Integral: true},
							Op:    OpPow,
							Right: &Number{Value: 3, Integral: true},
						},
						Op:    OpPow,
						Right: &Number{Value: 2, Integral: true},
					},
				},
			},
		},
		{
			name: "call",
			src:  "set Power to pow(2, 3.5);",
			stmts: []Stmt{
				&Assignment{
					Name: "Power",
					Value: &FunctionCall{
						Func: "pow",
						Args: []Expr{
							&Number{Value: 2, Integral: true},
							&Number{Value: 3.5},
						},
					},
				},
			},
		},
		{
			name: "precedence",
			src:  "set C to A + B * PI;",
			stmts: []Stmt{
				&Assignment{
					Name: "C",
					Value: &BinaryOp{
						Left: &Variable{Name: "A"},
						Op:   OpAdd,
						Right: &BinaryOp{
							Left:  &Variable{Name: "B"},
							Op:    OpMul,
							Right: &Variable{Name: "PI"},
						},
					},
				},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stmts, err := Parse(mustTokenize(t, c.src))
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if !reflect.DeepEqual(stmts, c.stmts) {
				t.Errorf("mismatched AST:\n\twant %v\n\tgot  %v from %q", c.stmts, stmts, c.src)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
		eof  bool
		got  TokenKind
	}{
		{"show-expr", "show A + B;", "Semicolon", false, TokenOperator},
		{"show-number", "show 5;", "Ident", false, TokenNumber},
		{"show-eof", "show", "Ident", true, 0},
		{"no-semi", "set A to 1", "Semicolon", true, 0},
		{"no-semi-next", "set A to 1 show A;", "Semicolon", false, TokenShow},
		{"no-to", "set A 1;", "To", false, TokenNumber},
		{"no-name", "set to 1;", "Ident", false, TokenTo},
		{"no-value", "set A to ;", WantExpression, false, TokenSemicolon},
		{"value-eof", "set A to", WantExpression, true, 0},
		{"dangling-op", "set A to 1 +;", WantExpression, false, TokenSemicolon},
		{"double-op", "set A to 1 * * 2;", WantExpression, false, TokenOperator},
		{"unary-minus", "set A to -1;", WantExpression, false, TokenOperator},
		{"unbalanced", "set A to (1 + 2;", "RParen", false, TokenSemicolon},
		{"unbalanced-eof", "set A to (1 + 2", "RParen", true, 0},
		{"extra-close", "set A to 1 + 2);", "Semicolon", false, TokenRParen},
		{"bare-expr", "1 + 2;", WantStatement, false, TokenNumber},
		{"bare-ident", "A;", WantStatement, false, TokenIdent},
		{"trailing", "show A; ;", WantStatement, false, TokenSemicolon},
		{"trailing-fragment", "show A; set B", "To", true, 0},
		{"call-empty", "set A to sin();", WantExpression, false, TokenRParen},
		{"call-no-paren", "set A to sin 1;", "LParen", false, TokenNumber},
		{"call-trailing-comma", "set A to pow(1, );", WantExpression, false, TokenRParen},
		{"call-unclosed", "set A to pow(1, 2;", "RParen", false, TokenSemicolon},
		{"call-eof", "set A to pow(1", "RParen", true, 0},
		{"func-as-name", "set sin to 1;", "Ident", false, TokenFunction},
	}
	ere := regexp.MustCompile(`^expected \S+, found `)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stmts, err := Parse(mustTokenize(t, c.src))
			if err == nil {
				t.Fatalf("%q parsed without error to %v", c.src, stmts)
			}
			if stmts != nil {
				t.Errorf("%q gave statements %v with error", c.src, stmts)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error was %#v, not *ParseError", err)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("%v does not match ErrParse", err)
			}
			if pe.Want != c.want {
				t.Errorf("%q: want expected %q, got %q", c.src, c.want, pe.Want)
			}
			if pe.EOF != c.eof {
				t.Errorf("%q: want eof %t, got %t", c.src, c.eof, pe.EOF)
			}
			if !c.eof && pe.Got.Kind != c.got {
				t.Errorf("%q: want found %v, got %v", c.src, c.got, pe.Got)
			}
			msg := err.Error()
			if !ere.MatchString(msg) {
				t.Errorf("%q doesn't look like an expected-token message", msg)
			}
			if c.eof && !regexp.MustCompile(`end of input$`).MatchString(msg) {
				t.Errorf("%q doesn't mention end of input", msg)
			}
		})
	}
}

func TestParseEmptyTokens(t *testing.T) {
	stmts, err := Parse(nil)
	if err != nil || stmts != nil {
		t.Errorf("Parse(nil) gave %v, %v", stmts, err)
	}
}

func TestFormat(t *testing.T) {
	src := "set A to 10; set B to A ** 2 ** 0.5; show B;"
	stmts, err := Parse(mustTokenize(t, src))
	if err != nil {
		t.Fatal(err)
	}
	got := Format(stmts)
	want := "set A to 10;\nset B to (A ** 2) ** 0.5;\nshow B;\n"
	if got != want {
		t.Errorf("want %q, got %q", want, got)
	}
	// Formatted programs parse to the same trees.
	again, err := Parse(mustTokenize(t, got))
	if err != nil {
		t.Fatalf("formatted program %q failed to parse: %v", got, err)
	}
	if !reflect.DeepEqual(again, stmts) {
		t.Errorf("formatted program parses differently:\n\twant %v\n\tgot  %v", stmts, again)
	}
}
