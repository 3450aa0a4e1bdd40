package lexconfigs

import (
	"runtime"

	"github.com/reusee/taitok/cmds"
	"github.com/reusee/taitok/configs"
	"github.com/reusee/taitok/vars"
)

// MaxJobs bounds how many sources are lexed concurrently.
type MaxJobs int

var maxJobsFlag = cmds.Var[int]("-jobs")

func (Module) MaxJobs(
	loader configs.Loader,
) MaxJobs {
	return MaxJobs(max(1, vars.FirstNonZero(
		*maxJobsFlag,
		configs.First[int](loader, "jobs"),
		runtime.GOMAXPROCS(0),
	)))
}
