package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taitok/debugs"
	"github.com/reusee/taitok/lexconfigs"
	"github.com/reusee/taitok/tailex"
)

type Module struct {
	dscope.Module
	Lex     tailex.Module
	Configs lexconfigs.Module
	Debugs  debugs.Module
}
