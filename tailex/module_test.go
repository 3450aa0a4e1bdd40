package tailex

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taitok/modes"
)

func TestModule(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
		dscope.Provide(Options{
			FoldNegativeLiterals: true,
		}),
	).Call(func(
		lex Lex,
	) {
		source := NewSource("test.tai", []byte("a+=-1\n`"))
		tokens := lex(t.Context(), source)
		if got := fmtTokens(tokens); got != `[Identifier("a") PlusAssign Integer(-1) Newline Error(InvalidByte)]` {
			t.Fatalf("got %s", got)
		}
	})
}

func fmtTokens(tokens []Token) string {
	strs := make([]string, 0, len(tokens))
	for _, token := range tokens {
		strs = append(strs, token.String())
	}
	return fmtStrings(strs)
}
