package lexconfigs

import (
	"github.com/reusee/taitok/cmds"
	"github.com/reusee/taitok/configs"
	"github.com/reusee/taitok/logs"
	"github.com/reusee/taitok/tailex"
)

var (
	foldNegativeFlag = cmds.Switch("-fold-negative")
	skipTriviaFlag   = cmds.Switch("-skip-trivia")
)

// Options resolves lexer options. A flag enables an option regardless of
// the config files.
func (Module) Options(
	loader configs.Loader,
	logger logs.Logger,
) (ret tailex.Options) {
	defer func() {
		logger.Debug("lex options",
			"fold_negative_literals", ret.FoldNegativeLiterals,
			"skip_trivia", ret.SkipTrivia,
		)
	}()
	return tailex.Options{
		FoldNegativeLiterals: *foldNegativeFlag ||
			configs.First[bool](loader, "lex.fold_negative_literals"),
		SkipTrivia: *skipTriviaFlag ||
			configs.First[bool](loader, "lex.skip_trivia"),
	}
}
