package tailex

func (l *Lexer) scanIdentifier(start mark) Token {
	l.cur.advanceWhile(isIdentPart)
	token := l.emit(start, KindIdentifier)
	token.Text = token.Raw
	if kw, ok := LookupKeyword(token.Raw); ok {
		token.Kind = KindKeyword
		token.Keyword = kw
	}
	return token
}
