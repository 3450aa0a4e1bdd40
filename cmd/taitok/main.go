package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taitok/cmds"
	"github.com/reusee/taitok/debugs"
	"github.com/reusee/taitok/lexconfigs"
	"github.com/reusee/taitok/logs"
	"github.com/reusee/taitok/modes"
	"github.com/reusee/taitok/tailex"
	"golang.org/x/term"
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		lex tailex.Lex,
		options tailex.Options,
		jobs lexconfigs.MaxJobs,
		predicate debugs.Predicate,
		tap debugs.Tap,
	) {

		var output printer
		if *jsonOutput {
			output = jsonPrinter(os.Stdout)
		} else {
			output = textPrinter(os.Stdout)
		}

		if *replMode {
			ce(runREPL(ctx, lex, output))
			return
		}

		var results []lexResult
		if len(files) > 0 {
			results = lexFiles(ctx, files, jobs, lex)
		} else if stdin := getStdinContent(); stdin != nil {
			source := tailex.NewSource("<stdin>", stdin)
			results = []lexResult{{
				source: source,
				tokens: lex(ctx, source),
			}}
		} else {
			cmds.GlobalExecutor.PrintUsage()
			os.Exit(2)
		}

		keep := func(tailex.Token) bool {
			return true
		}
		if *filterExpr != "" {
			pred, err := predicate(*filterExpr, filterHelpers)
			ce(err)
			keep = func(token tailex.Token) bool {
				ok, err := pred(token)
				ce(err)
				return ok
			}
		}

		failed := false
		for _, result := range results {
			if result.err != nil {
				fmt.Fprintln(os.Stderr, result.err)
				failed = true
				continue
			}
			name := result.source.Name
			logger.Info("source", "name", name, "tokens", len(result.tokens))

			if !*quiet {
				for _, token := range result.tokens {
					if !keep(token) {
						continue
					}
					ce(output(name, token))
				}
			}

			if err := tailex.Errors(result.tokens, result.source); err != nil {
				fmt.Fprintln(os.Stderr, err)
				failed = true
			}

			if *checkTiling {
				tokens := result.tokens
				if options.SkipTrivia {
					// tiling needs the trivia tokens back
					tokens = result.source.Lexer(&tailex.Options{
						FoldNegativeLiterals: options.FoldNegativeLiterals,
					}).ScanAll()
				}
				if err := tailex.Verify(result.source.Content, tokens); err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
					failed = true
				}
			}

			if *tapTokens {
				tap(ctx, name, map[string]any{
					"tokens": result.tokens,
					"source": result.source.Content,
				})
			}
		}

		if failed {
			os.Exit(1)
		}
	})
}

var filterHelpers = map[string]any{
	"is_keyword": func(s string) bool {
		_, ok := tailex.LookupKeyword(s)
		return ok
	},
	"is_operator": func(s string) bool {
		_, ok := tailex.LookupOperator(s)
		return ok
	},
}

func getStdinContent() []byte {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	content, err := io.ReadAll(os.Stdin)
	ce(err)
	return content
}
