package tailex

var singleOperators = [256]Operator{
	'+':  Plus,
	'-':  Minus,
	'*':  Asterisk,
	'/':  Solidus,
	'\\': ReverseSolidus,
	'&':  Ampersand,
	'@':  AtMark,
	'#':  Hash,
	'$':  Dollar,
	'%':  Percent,
	'~':  Tilde,
	'^':  Circumflex,
	'|':  VerticalLine,
	'\'': Apostrophe,
	'(':  LeftParen,
	')':  RightParen,
	'[':  LeftBracket,
	']':  RightBracket,
	'{':  LeftBrace,
	'}':  RightBrace,
	'<':  LessThan,
	'>':  GreaterThan,
	'.':  FullStop,
	',':  Comma,
	'!':  Exclamation,
	'?':  Question,
	':':  Colon,
	';':  Semicolon,
	'=':  Assign,
}

// assignOperators holds the lead-plus-'=' forms.
var assignOperators = [256]Operator{
	'+': PlusAssign,
	'-': MinusAssign,
	'*': MultiplyAssign,
	'/': DivideAssign,
	'%': PercentAssign,
	'^': XorAssign,
	'&': AndAssign,
	'|': OrAssign,
	'!': NotEqual,
	'=': Equal,
	'<': LessEqual,
	'>': GreaterEqual,
}

// scanOperator resolves by longest match: three bytes, then two, then one.
// It only consumes bytes that belong to the resolved operator.
func (l *Lexer) scanOperator(start mark) Token {
	b, _ := l.cur.advance()
	op := singleOperators[b]

	switch b {

	case '-':
		if next, ok := l.cur.peek(); ok && isDigit(next) && l.options.FoldNegativeLiterals {
			l.cur.advanceWhile(isDigit)
			return l.integerToken(start)
		}
		if l.cur.match('>') {
			op = SingleArrow
		} else if l.cur.match('=') {
			op = MinusAssign
		}

	case '=':
		if l.cur.match('=') {
			op = Equal
		} else if l.cur.match('>') {
			op = DoubleArrow
		}

	case '<':
		if l.cur.match('<') {
			op = LeftShift
			if l.cur.match('=') {
				op = LeftShiftAssign
			}
		} else if l.cur.match('=') {
			op = LessEqual
		}

	case '>':
		if l.cur.match('>') {
			op = RightShift
			if l.cur.match('=') {
				op = RightShiftAssign
			}
		} else if l.cur.match('=') {
			op = GreaterEqual
		}

	default:
		if assign := assignOperators[b]; assign != NotOperator && l.cur.match('=') {
			op = assign
		}

	}

	token := l.emit(start, KindOperator)
	token.Operator = op
	token.Text = token.Raw
	return token
}
