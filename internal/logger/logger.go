// Package logger initializes the process-wide logrus logger from the
// logging config section.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Conf configures the internal logger.
type Conf struct {
	// Dir is a directory to write panel.log to; empty disables file
	// logging
	Dir string `yaml:"dir"`
	// StdErr additionally logs to stderr
	StdErr bool `yaml:"stderr"`
	// Level sets the verbosity (e.g. DEBUG, INFO, WARN, ERROR)
	Level string `yaml:"level"`
}

// Init configures the global logrus logger according to the passed Conf.
func Init(c Conf) error {
	level := log.InfoLevel
	if c.Level != "" {
		var err error
		level, err = log.ParseLevel(c.Level)
		if err != nil {
			return errors.Wrapf(err, "unknown log level '%s'", c.Level)
		}
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	var writers []io.Writer
	if c.Dir != "" {
		f, err := os.OpenFile(
			filepath.Join(c.Dir, "panel.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644,
		)
		if err != nil {
			return errors.Wrap(err, "could not open log file")
		}
		writers = append(writers, f)
	}
	if c.StdErr || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}
