package lexconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taitok/configs"
	"github.com/reusee/taitok/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
