package tailex

import (
	"errors"
	"fmt"
)

var ErrBrokenTiling = errors.New("token spans do not tile the source")

// Verify checks that tokens cover src exactly once, in order, with raw text
// matching the bytes under each span.
func Verify(src string, tokens []Token) error {
	offset := 0
	for i, token := range tokens {
		span := token.Span
		switch {
		case span.StartOffset != offset:
			return fmt.Errorf("token %d %v: starts at %d, expecting %d: %w", i, token, span.StartOffset, offset, ErrBrokenTiling)
		case span.EndOffset <= span.StartOffset:
			return fmt.Errorf("token %d %v: empty span %v: %w", i, token, span, ErrBrokenTiling)
		case span.EndOffset > len(src):
			return fmt.Errorf("token %d %v: ends at %d past %d: %w", i, token, span.EndOffset, len(src), ErrBrokenTiling)
		case src[span.StartOffset:span.EndOffset] != token.Raw:
			return fmt.Errorf("token %d %v: raw text %q differs from source %q: %w", i, token, token.Raw, src[span.StartOffset:span.EndOffset], ErrBrokenTiling)
		}
		offset = span.EndOffset
	}
	if offset != len(src) {
		return fmt.Errorf("tokens end at %d, source length %d: %w", offset, len(src), ErrBrokenTiling)
	}
	return nil
}
