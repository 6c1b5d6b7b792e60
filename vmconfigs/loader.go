package vmconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/regstack/configs"
	"github.com/reusee/regstack/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"regstack.cue",
	".regstack.cue",
}

// ConfigDirs lists the directories searched for config files, most specific first.
type ConfigDirs []string

func (Module) ConfigDirs() ConfigDirs {
	var dirs []string

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}

	// system wide dir
	dirs = append(dirs, "/etc")

	return dirs
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	dirs ConfigDirs,
) configs.Loader {

	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	loader := configs.NewLoader(paths, schema)
	if paths := loader.Paths(); len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return loader
}
