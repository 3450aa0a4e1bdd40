package tailex

type cursor struct {
	src    string
	offset int
	line   int
	column int
}

func newCursor(src string) cursor {
	return cursor{
		src:  src,
		line: 1,
	}
}

func (c *cursor) atEnd() bool {
	return c.offset >= len(c.src)
}

func (c *cursor) peek() (byte, bool) {
	return c.peekAt(0)
}

// peekAt looks n bytes past the current offset without consuming.
func (c *cursor) peekAt(n int) (byte, bool) {
	i := c.offset + n
	if i >= len(c.src) {
		return 0, false
	}
	return c.src[i], true
}

func (c *cursor) advance() (byte, bool) {
	b, ok := c.peek()
	if !ok {
		return 0, false
	}
	c.offset++
	if b == '\n' {
		c.line++
		c.column = 0
	} else {
		c.column++
	}
	return b, true
}

// match consumes the next byte only if it equals expect.
func (c *cursor) match(expect byte) bool {
	if b, ok := c.peek(); ok && b == expect {
		c.advance()
		return true
	}
	return false
}

// advanceWhile consumes bytes while pred holds and returns the count.
func (c *cursor) advanceWhile(pred func(byte) bool) int {
	n := 0
	for {
		b, ok := c.peek()
		if !ok || !pred(b) {
			return n
		}
		c.advance()
		n++
	}
}

type mark struct {
	offset int
	line   int
	column int
}

func (c *cursor) mark() mark {
	return mark{
		offset: c.offset,
		line:   c.line,
		column: c.column,
	}
}

func (c *cursor) spanFrom(m mark) Span {
	return Span{
		StartOffset: m.offset,
		EndOffset:   c.offset,
		Line:        m.line,
		ColumnStart: m.column,
		EndLine:     c.line,
		ColumnEnd:   c.column,
	}
}

func (c *cursor) textFrom(m mark) string {
	return c.src[m.offset:c.offset]
}
