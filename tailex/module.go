package tailex

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/taitok/logs"
	"github.com/reusee/taitok/modes"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Lex scans one whole source inside its own logged pass.
type Lex func(ctx context.Context, source *Source) []Token

func (Module) Lex(
	logger logs.Logger,
	newPass logs.NewPass,
	options Options,
	mode modes.Mode,
) Lex {
	return func(ctx context.Context, source *Source) []Token {
		ctx, _ = newPass(ctx, source.Name)

		tokens := source.Lexer(&options).ScanAll()

		if mode == modes.ModeDevelopment && !options.SkipTrivia {
			if err := Verify(source.Content, tokens); err != nil {
				panic(logs.WrapPass(ctx, err))
			}
		}

		numErrors := 0
		for _, token := range tokens {
			if token.Kind == KindError {
				numErrors++
				logger.DebugContext(ctx, "lex error",
					"kind", token.Error.String(),
					"span", token.Span.String(),
				)
			}
		}
		logger.DebugContext(ctx, "lexed",
			"source", source.Name,
			"bytes", len(source.Content),
			"tokens", len(tokens),
			"errors", numErrors,
		)

		return tokens
	}
}
