package tailex

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Token is a classified piece of source. Raw always slices the original
// source; Text and Int hold decoded values where the kind has one.
type Token struct {
	Kind     Kind
	Keyword  Keyword
	Operator Operator
	Error    ErrorKind

	Raw  string
	Text string
	Int  int64

	Span Span
}

func (t Token) String() string {
	switch t.Kind {
	case KindKeyword:
		return "Keyword(" + t.Keyword.String() + ")"
	case KindOperator:
		return t.Operator.Name()
	case KindInteger:
		return "Integer(" + strconv.FormatInt(t.Int, 10) + ")"
	case KindNewline:
		return "Newline"
	case KindError:
		return "Error(" + t.Error.String() + ")"
	case KindIdentifier, KindString, KindLineComment, KindBlockComment, KindWhitespace:
		return t.Kind.String() + "(" + strconv.Quote(t.Text) + ")"
	}
	return t.Kind.String()
}

// Err returns the positioned diagnostic of an error token, nil otherwise.
func (t Token) Err(source *Source) error {
	if t.Kind != KindError {
		return nil
	}
	err := t.Error.Err()
	if t.Text != "" {
		err = fmt.Errorf("%w: %s", err, t.Text)
	}
	return &PosError{
		Err:    err,
		Span:   t.Span,
		Source: source,
	}
}

// Render concatenates raw token text. For a complete token stream it
// reproduces the source exactly.
func Render(tokens []Token) string {
	var b strings.Builder
	for _, token := range tokens {
		b.WriteString(token.Raw)
	}
	return b.String()
}

// Errors joins the diagnostics of all error tokens.
func Errors(tokens []Token, source *Source) error {
	var errs []error
	for _, token := range tokens {
		if err := token.Err(source); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
