package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.With("source", "foo.tai").Warn("lexed", "tokens", 42)
		if !strings.Contains(buf.String(), "source=foo.tai") {
			t.Fatalf("got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "tokens=42") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if key := toJournalKey("logs.pass"); key != "LOGS_PASS" {
		t.Fatalf("got %s", key)
	}
}
