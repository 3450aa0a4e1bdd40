package tailex

import (
	"strings"
	"testing"
)

func lexString(src string, options *Options) string {
	var parts []string
	for token := range NewString(src, options).All() {
		parts = append(parts, token.String())
	}
	return strings.Join(parts, " ")
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a+=1", `Identifier("a") PlusAssign Integer(1)`},
		{"// hi\nx", `LineComment(" hi") Newline Identifier("x")`},
		{"/* abc", `Error(UnterminatedBlockComment)`},
		{"<<=", `LeftShiftAssign`},
		{`"ab\"c"`, `String("ab\"c")`},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := lexString(test.input, nil); got != test.expected {
				t.Fatalf("expected %s, got %s", test.expected, got)
			}
		})
	}

	tokens := NewString("/* abc", nil).ScanAll()
	if tokens[0].Span.StartOffset != 0 || tokens[0].Span.EndOffset != 6 {
		t.Fatalf("got %v", tokens[0].Span)
	}
	tokens = NewString("<<=", nil).ScanAll()
	if tokens[0].Span.StartOffset != 0 || tokens[0].Span.EndOffset != 3 {
		t.Fatalf("got %v", tokens[0].Span)
	}
	tokens = NewString(`"ab\"c"`, nil).ScanAll()
	if tokens[0].Text != `ab"c` {
		t.Fatalf("got %q", tokens[0].Text)
	}
	if tokens[0].Raw != `"ab\"c"` {
		t.Fatalf("got %q", tokens[0].Raw)
	}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"let mut x = 42;", `Keyword(let) Whitespace(" ") Keyword(mut) Whitespace(" ") Identifier("x") Whitespace(" ") Assign Whitespace(" ") Integer(42) Semicolon`},
		{"fn f(a, b) -> a", `Keyword(fn) Whitespace(" ") Identifier("f") LeftParen Identifier("a") Comma Whitespace(" ") Identifier("b") RightParen Whitespace(" ") SingleArrow Whitespace(" ") Identifier("a")`},
		{" \t\r\n", `Whitespace(" \t\r") Newline`},
		{"\r\n\n", `Whitespace("\r") Newline Newline`},
		{"a/b", `Identifier("a") Solidus Identifier("b")`},
		{"a/=b", `Identifier("a") DivideAssign Identifier("b")`},
		{"x//c\ny", `Identifier("x") LineComment("c") Newline Identifier("y")`},
		{"//", `LineComment("")`},
		{"/**/", `BlockComment("")`},
		{"/* a */b", `BlockComment(" a ") Identifier("b")`},
		{"/* /* */ */", `BlockComment(" /* ") Whitespace(" ") Asterisk Solidus`},
		{"/*/", `Error(UnterminatedBlockComment)`},
		{"/***/", `BlockComment("*")`},
		{"12ab", `Integer(12) Identifier("ab")`},
		{"007", `Integer(7)`},
		{"a`b", `Identifier("a") Error(InvalidByte) Identifier("b")`},
		{"\x80\xff", `Error(InvalidByte) Error(InvalidByte)`},
		{"é", `Error(InvalidByte) Error(InvalidByte)`},
		{"\x00", `Error(InvalidByte)`},
		{`"abc`, `Error(UnterminatedString)`},
		{`"abc\`, `Error(UnterminatedString)`},
		{`"abc" x "`, `String("abc") Whitespace(" ") Identifier("x") Whitespace(" ") Error(UnterminatedString)`},
		{"'a'", `Apostrophe Identifier("a") Apostrophe`},
		{`@#$~?:\`, `AtMark Hash Dollar Tilde Question Colon ReverseSolidus`},
		{"{[()]}", `LeftBrace LeftBracket LeftParen RightParen RightBracket RightBrace`},
		{"a.b", `Identifier("a") FullStop Identifier("b")`},
		{"!x", `Exclamation Identifier("x")`},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := lexString(test.input, nil); got != test.expected {
				t.Fatalf("expected %s, got %s", test.expected, got)
			}
		})
	}
}

func TestUnterminatedEndsStream(t *testing.T) {
	for _, input := range []string{
		"x \"abc\n let y = 1",
		"x /* abc\n let y = 1",
	} {
		tokens := NewString(input, nil).ScanAll()
		last := tokens[len(tokens)-1]
		if last.Kind != KindError {
			t.Fatalf("got %v", last)
		}
		if last.Span.EndOffset != len(input) {
			t.Fatalf("got %v", last.Span)
		}
		if last.Span.StartOffset != 2 {
			t.Fatalf("got %v", last.Span)
		}
		if _, ok := NewString(input, nil).Next(); !ok {
			t.Fatal()
		}
	}
}

func TestSkipTrivia(t *testing.T) {
	got := lexString("let x = 1 // one\n/* two */ x", &Options{
		SkipTrivia: true,
	})
	expected := `Keyword(let) Identifier("x") Assign Integer(1) Identifier("x")`
	if got != expected {
		t.Fatalf("got %s", got)
	}
}

func TestNextAtEnd(t *testing.T) {
	lexer := NewString("a", nil)
	if _, ok := lexer.Next(); !ok {
		t.Fatal()
	}
	for range 3 {
		if token, ok := lexer.Next(); ok {
			t.Fatalf("got %v", token)
		}
	}
}

func TestAllBreak(t *testing.T) {
	lexer := NewString("a b c", nil)
	for token := range lexer.All() {
		if token.Kind != KindIdentifier {
			t.Fatalf("got %v", token)
		}
		break
	}
	// the lexer resumes after the last yielded token
	token, ok := lexer.Next()
	if !ok || token.Kind != KindWhitespace || token.Span.StartOffset != 1 {
		t.Fatalf("got %v", token)
	}
}

func TestNewCopiesInput(t *testing.T) {
	src := []byte("abc")
	lexer := New(src, nil)
	src[0] = 'x'
	token, _ := lexer.Next()
	if token.Raw != "abc" {
		t.Fatalf("got %q", token.Raw)
	}
}

func TestSingleBytes(t *testing.T) {
	// every byte value is classified and consumed on its own
	for i := range 256 {
		src := string([]byte{byte(i)})
		tokens := ScanAll([]byte(src), nil)
		if len(tokens) != 1 {
			t.Fatalf("byte 0x%02x: got %v", i, tokens)
		}
		if tokens[0].Span.StartOffset != 0 || tokens[0].Span.EndOffset != 1 {
			t.Fatalf("byte 0x%02x: got %v", i, tokens[0].Span)
		}
		if tokens[0].Kind == Invalid {
			t.Fatalf("byte 0x%02x: invalid kind", i)
		}
	}
}
