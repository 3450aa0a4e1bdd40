package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/taitok/tailex"
)

func runREPL(ctx context.Context, lex tailex.Lex, output printer) error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".taitok_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "lex> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return nil
		}
		if line == "" {
			continue
		}
		source := tailex.NewSource("<repl>", []byte(line))
		for _, token := range lex(ctx, source) {
			if err := output(source.Name, token); err != nil {
				return err
			}
			if err := token.Err(source); err != nil {
				fmt.Fprint(os.Stderr, err.Error())
			}
		}
	}
}
