package tailex

import "strings"

func (l *Lexer) scanString(start mark) Token {
	l.cur.advance() // opening quote
	contentStart := l.cur.offset

	// buf is only used once an escape makes the content differ from the source
	var buf strings.Builder
	escaped := false

	for {
		at := l.cur.offset
		b, ok := l.cur.advance()
		if !ok {
			return l.errorToken(start, UnterminatedString, "")
		}

		switch b {

		case '"':
			token := l.emit(start, KindString)
			if escaped {
				token.Text = buf.String()
			} else {
				token.Text = l.cur.src[contentStart:at]
			}
			return token

		case '\\':
			if !escaped {
				escaped = true
				buf.WriteString(l.cur.src[contentStart:at])
			}
			next, ok := l.cur.advance()
			if !ok {
				return l.errorToken(start, UnterminatedString, "")
			}
			switch next {
			case 'n':
				buf.WriteByte('\n')
			case 't':
				buf.WriteByte('\t')
			case 'r':
				buf.WriteByte('\r')
			case '0':
				buf.WriteByte(0)
			case '\\', '"', '\'':
				buf.WriteByte(next)
			default:
				buf.WriteByte('\\')
				buf.WriteByte(next)
			}

		default:
			if escaped {
				buf.WriteByte(b)
			}

		}
	}
}
