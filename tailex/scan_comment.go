package tailex

func (l *Lexer) scanLineComment(start mark) Token {
	l.cur.advance()
	l.cur.advance()
	l.cur.advanceWhile(func(b byte) bool {
		return b != '\n'
	})
	token := l.emit(start, KindLineComment)
	token.Text = token.Raw[2:]
	return token
}

// scanBlockComment stops at the first "*/"; comments do not nest.
func (l *Lexer) scanBlockComment(start mark) Token {
	l.cur.advance()
	l.cur.advance()
	for {
		b, ok := l.cur.advance()
		if !ok {
			return l.errorToken(start, UnterminatedBlockComment, "")
		}
		if b == '*' && l.cur.match('/') {
			token := l.emit(start, KindBlockComment)
			token.Text = token.Raw[2 : len(token.Raw)-2]
			return token
		}
	}
}
