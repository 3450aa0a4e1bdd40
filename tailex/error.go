package tailex

import (
	"fmt"
	"strings"
)

type PosError struct {
	Err    error
	Span   Span
	Source *Source
}

func (p *PosError) Error() string {
	if p.Source == nil {
		return fmt.Sprintf("%s at %d:%d", p.Err.Error(), p.Span.Line, p.Span.ColumnStart+1)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), p.Source.Name, p.Span.Line, p.Span.ColumnStart+1))

	// line content
	idx := p.Span.Line - 1
	if idx >= 0 && idx < len(p.Source.Lines) {
		line := strings.TrimSuffix(p.Source.Lines[idx], "\r")
		sb.WriteString(line)
		sb.WriteString("\n")

		// caret, columns are byte based
		for i := 0; i < p.Span.ColumnStart && i < len(line); i++ {
			if line[i] == '\t' {
				sb.WriteByte('\t')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p *PosError) Unwrap() error {
	return p.Err
}
