package lexconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/taitok/cmds"
	"github.com/reusee/taitok/configs"
	"github.com/reusee/taitok/logs"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config")

// ConfigPaths lists candidate config files, highest precedence first.
type ConfigPaths []string

func (Module) ConfigPaths() (paths ConfigPaths) {
	// explicit files
	paths = append(paths, *configFiles...)

	filenames := []string{
		"taitok.cue",
		".taitok.cue",
	}
	var dirs []string

	// working directory
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}

	// user config dir
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}

	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return
}

func (Module) ConfigsLoader(
	paths ConfigPaths,
	logger logs.Logger,
) configs.Loader {
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, schema)
}
