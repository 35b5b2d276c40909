package config

import (
	"os"

	"github.com/pkg/errors"

	"github.com/xerodma/panel/internal/logger"
)

// loggingConf holds all logging-related configuration under the `logging` key.
//
// YAML example:
//
//	logging:
//	  internal:
//	    dir: /var/log/xerodma-panel
//	    stderr: true
//	    level: INFO
type loggingConf struct {
	Internal logger.Conf `yaml:"internal"`
}

func checkLoggingDirExists(dir string) error {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return errors.Errorf("logging directory '%s' does not exist", dir)
	}
	return nil
}

func (c *loggingConf) validate() error {
	return checkLoggingDirExists(c.Internal.Dir)
}

var defaultLoggingConf = loggingConf{
	Internal: logger.Conf{
		Level:  "INFO",
		StdErr: true,
	},
}
