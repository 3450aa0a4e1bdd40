package main

import (
	"context"
	"os"
	"sync"

	"github.com/reusee/taitok/lexconfigs"
	"github.com/reusee/taitok/syncs"
	"github.com/reusee/taitok/tailex"
)

type lexResult struct {
	source *tailex.Source
	tokens []tailex.Token
	err    error
}

// lexFiles reads and lexes every path, at most jobs at a time. Each source
// gets its own lexer; results keep the order of paths.
func lexFiles(
	ctx context.Context,
	paths []string,
	jobs lexconfigs.MaxJobs,
	lex tailex.Lex,
) []lexResult {
	results := make([]lexResult, len(paths))
	sem := syncs.NewSemaphore(int(jobs))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Go(func() {
			if err := sem.AcquireContext(ctx); err != nil {
				results[i].err = err
				return
			}
			defer sem.Release()
			content, err := os.ReadFile(path)
			if err != nil {
				results[i].err = wrap(err)
				return
			}
			source := tailex.NewSource(path, content)
			results[i] = lexResult{
				source: source,
				tokens: lex(ctx, source),
			}
		})
	}
	wg.Wait()
	return results
}
