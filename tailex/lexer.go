package tailex

import (
	"fmt"
	"iter"
)

type Lexer struct {
	cur     cursor
	options Options
}

func New(src []byte, options *Options) *Lexer {
	return NewString(string(src), options)
}

func NewString(src string, options *Options) *Lexer {
	l := &Lexer{
		cur: newCursor(src),
	}
	if options != nil {
		l.options = *options
	}
	return l
}

type byteClass uint8

const (
	classInvalid byteClass = iota
	classNewline
	classSpace
	classDigit
	classIdentStart
	classQuote
	classOperator
)

// byteClasses maps every byte value to exactly one class.
var byteClasses = func() (ret [256]byteClass) {
	ret['\n'] = classNewline
	for _, b := range []byte(" \t\r\f") {
		ret[b] = classSpace
	}
	for b := '0'; b <= '9'; b++ {
		ret[b] = classDigit
	}
	for b := 'a'; b <= 'z'; b++ {
		ret[b] = classIdentStart
		ret[b-'a'+'A'] = classIdentStart
	}
	ret['_'] = classIdentStart
	ret['"'] = classQuote
	for b, op := range singleOperators {
		if op != NotOperator {
			ret[b] = classOperator
		}
	}
	return
}()

func isSpace(b byte) bool {
	return byteClasses[b] == classSpace
}

func isDigit(b byte) bool {
	return byteClasses[b] == classDigit
}

func isIdentPart(b byte) bool {
	c := byteClasses[b]
	return c == classIdentStart || c == classDigit
}

// Next returns the next token, or false once every byte has been consumed.
func (l *Lexer) Next() (Token, bool) {
	for {
		token, ok := l.scan()
		if !ok {
			return Token{}, false
		}
		if l.options.SkipTrivia && token.Kind.IsTrivia() {
			continue
		}
		return token, true
	}
}

func (l *Lexer) scan() (Token, bool) {
	b, ok := l.cur.peek()
	if !ok {
		return Token{}, false
	}
	start := l.cur.mark()

	switch byteClasses[b] {

	case classNewline:
		l.cur.advance()
		token := l.emit(start, KindNewline)
		token.Text = token.Raw
		return token, true

	case classSpace:
		l.cur.advanceWhile(isSpace)
		token := l.emit(start, KindWhitespace)
		token.Text = token.Raw
		return token, true

	case classDigit:
		return l.scanInteger(start), true

	case classIdentStart:
		return l.scanIdentifier(start), true

	case classQuote:
		return l.scanString(start), true

	case classOperator:
		if b == '/' {
			// comments take priority over division
			switch next, _ := l.cur.peekAt(1); next {
			case '/':
				return l.scanLineComment(start), true
			case '*':
				return l.scanBlockComment(start), true
			}
		}
		return l.scanOperator(start), true

	}

	l.cur.advance()
	return l.errorToken(start, InvalidByte, fmt.Sprintf("byte 0x%02x", b)), true
}

func (l *Lexer) emit(start mark, kind Kind) Token {
	return Token{
		Kind: kind,
		Raw:  l.cur.textFrom(start),
		Span: l.cur.spanFrom(start),
	}
}

func (l *Lexer) errorToken(start mark, kind ErrorKind, detail string) Token {
	token := l.emit(start, KindError)
	token.Error = kind
	token.Text = detail
	return token
}

func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			token, ok := l.Next()
			if !ok {
				return
			}
			if !yield(token) {
				return
			}
		}
	}
}

// ScanAll drains the lexer.
func (l *Lexer) ScanAll() (ret []Token) {
	for token := range l.All() {
		ret = append(ret, token)
	}
	return
}

func ScanAll(src []byte, options *Options) []Token {
	return New(src, options).ScanAll()
}
