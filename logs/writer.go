package logs

import (
	"io"
	"os"
)

// Writer receives terminal log output; tests fork a buffer in its place.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
