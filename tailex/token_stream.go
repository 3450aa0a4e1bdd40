package tailex

// TokenStream is the view a parser consumes: significant tokens only, with
// an Invalid-kind EOF token once the input is exhausted.
type TokenStream interface {
	Current() (*Token, error)
	Consume()
}

type LexerTokenStream struct {
	lexer   *Lexer
	current *Token
	eof     Token
}

var _ TokenStream = new(LexerTokenStream)

func NewTokenStream(lexer *Lexer) *LexerTokenStream {
	return &LexerTokenStream{
		lexer: lexer,
	}
}

// Current returns the current token. Error tokens are returned together with
// their diagnostic so the caller decides whether to continue.
func (s *LexerTokenStream) Current() (*Token, error) {
	if s.current == nil {
		token, ok := s.next()
		if !ok {
			end := s.lexer.cur.mark()
			s.eof = Token{
				Span: s.lexer.cur.spanFrom(end),
			}
			return &s.eof, nil
		}
		s.current = &token
	}
	return s.current, s.current.Err(nil)
}

func (s *LexerTokenStream) next() (Token, bool) {
	for {
		token, ok := s.lexer.Next()
		if !ok {
			return token, false
		}
		if token.Kind.IsTrivia() {
			continue
		}
		return token, true
	}
}

func (s *LexerTokenStream) Consume() {
	s.current = nil
}

type SliceTokenStream struct {
	tokens []Token
	idx    int
}

var _ TokenStream = new(SliceTokenStream)

// NewSliceTokenStream replays already scanned tokens, skipping trivia.
func NewSliceTokenStream(tokens []Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) skip() {
	for s.idx < len(s.tokens) && s.tokens[s.idx].Kind.IsTrivia() {
		s.idx++
	}
}

func (s *SliceTokenStream) Current() (*Token, error) {
	s.skip()
	if s.idx >= len(s.tokens) {
		var end Span
		if n := len(s.tokens); n > 0 {
			last := s.tokens[n-1].Span
			end = Span{
				StartOffset: last.EndOffset,
				EndOffset:   last.EndOffset,
				Line:        last.EndLine,
				ColumnStart: last.ColumnEnd,
				EndLine:     last.EndLine,
				ColumnEnd:   last.ColumnEnd,
			}
		} else {
			end = Span{Line: 1, EndLine: 1}
		}
		return &Token{Span: end}, nil
	}
	token := &s.tokens[s.idx]
	return token, token.Err(nil)
}

func (s *SliceTokenStream) Consume() {
	s.skip()
	if s.idx < len(s.tokens) {
		s.idx++
	}
}
