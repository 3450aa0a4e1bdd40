package main

import "github.com/reusee/taitok/cmds"

var (
	files       []string
	jsonOutput  = cmds.Switch("-json")
	quiet       = cmds.Switch("-quiet")
	checkTiling = cmds.Switch("-check")
	tapTokens   = cmds.Switch("-tap")
	replMode    = cmds.Switch("repl")
	filterExpr  = cmds.Var[string]("-filter")
)

func init() {
	cmds.Define("-file", cmds.Func(func(path string) {
		files = append(files, path)
	}).Desc("lex a file, repeatable"))
	cmds.Positional(func(path string) error {
		files = append(files, path)
		return nil
	})
}
