package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewPass(t *testing.T) {
	buf := new(bytes.Buffer)
	level.Set(slog.LevelDebug)
	defer level.Set(slog.LevelWarn)

	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newPass NewPass,
	) {
		ctx := context.Background()

		ctx1, pass1 := newPass(ctx, "foo")
		if PassFrom(ctx1) != pass1 {
			t.Fatalf("got %v", PassFrom(ctx1))
		}

		_, pass2 := newPass(ctx1, "bar")
		if pass2 == pass1 {
			t.Fatal()
		}

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.pass="+string(pass1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[0], "name=foo") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.pass="+string(pass2)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[1], "parent="+string(pass1)) {
			t.Fatalf("got %v", lines[1])
		}
	})
}

var errFoo = errors.New("foo")

func TestWrapPass(t *testing.T) {
	err := WrapPass(context.Background(), errFoo)
	if err != errFoo {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), PassKey, Pass("abc"))
	err = WrapPass(ctx, errFoo)
	if !strings.Contains(err.Error(), "pass: abc") {
		t.Fatalf("got %v", err)
	}
}
