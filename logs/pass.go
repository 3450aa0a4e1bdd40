package logs

import (
	"context"
	"crypto/rand"
)

// Pass identifies one unit of work, usually one lexing pass over one source.
type Pass string

type passKey struct{}

var PassKey passKey

func PassFrom(ctx context.Context) Pass {
	if v := ctx.Value(PassKey); v != nil {
		return v.(Pass)
	}
	return ""
}

type NewPass func(ctx context.Context, name string) (context.Context, Pass)

func (Module) NewPass(
	logger Logger,
) NewPass {
	return func(ctx context.Context, name string) (context.Context, Pass) {
		parent := PassFrom(ctx)

		pass := Pass(rand.Text())
		ctx = context.WithValue(ctx, PassKey, pass)

		args := []any{
			"name", name,
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new pass", args...)

		return ctx, pass
	}
}
