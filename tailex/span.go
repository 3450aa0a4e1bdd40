package tailex

import "fmt"

// Span locates a token. Offsets are half-open byte offsets; Line/ColumnStart
// is the position of the first byte and EndLine/ColumnEnd the position just
// past the last byte. Columns count bytes from 0.
type Span struct {
	StartOffset int
	EndOffset   int
	Line        int
	ColumnStart int
	EndLine     int
	ColumnEnd   int
}

func (s Span) Len() int {
	return s.EndOffset - s.StartOffset
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d [%d,%d)", s.Line, s.ColumnStart, s.StartOffset, s.EndOffset)
}
