package tailex

import "strconv"

func (l *Lexer) scanInteger(start mark) Token {
	l.cur.advanceWhile(isDigit)
	return l.integerToken(start)
}

// integerToken decodes the consumed run, which may carry a leading '-'.
func (l *Lexer) integerToken(start mark) Token {
	token := l.emit(start, KindInteger)
	token.Text = token.Raw
	n, err := strconv.ParseInt(token.Raw, 10, 64)
	if err != nil {
		// only range errors are possible on a digit run
		token.Kind = KindError
		token.Error = IntegerOverflow
		return token
	}
	token.Int = n
	return token
}
