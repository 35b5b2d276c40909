// Package config loads and validates the panel server's YAML configuration.
package config

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	panel "github.com/xerodma/panel"
)

// Config holds all configuration for the panel server
type Config struct {
	Server   panel.ServerConf `yaml:"server"`
	Storage  storageConf      `yaml:"storage"`
	Sessions sessionsConf     `yaml:"sessions"`
	Logging  loggingConf      `yaml:"logging"`
	API      apiConf          `yaml:"api"`
}

var conf *Config

// Get returns the loaded Config
func Get() *Config {
	return conf
}

var possibleConfigLocations = []string{
	"config.yaml",
	"/etc/xerodma-panel/config.yaml",
}

// Load loads the config from the passed file; when file is empty the
// default locations are tried in order.
func Load(file string) {
	c := Config{
		Storage:  defaultStorageConf,
		Sessions: defaultSessionsConf,
		Logging:  defaultLoggingConf,
		API:      defaultAPIConf,
	}
	content := mustReadConfigFile(file)
	if err := yaml.Unmarshal(content, &c); err != nil {
		log.WithError(err).Fatal("could not parse config file")
	}
	if err := c.Storage.validate(); err != nil {
		log.WithError(err).Fatal("invalid storage config")
	}
	if err := c.Sessions.validate(); err != nil {
		log.WithError(err).Fatal("invalid sessions config")
	}
	if err := c.Logging.validate(); err != nil {
		log.WithError(err).Fatal("invalid logging config")
	}
	conf = &c
}

func mustReadConfigFile(file string) []byte {
	locations := possibleConfigLocations
	if file != "" {
		locations = []string{file}
	}
	for _, loc := range locations {
		content, err := os.ReadFile(loc)
		if err == nil {
			log.WithField("file", loc).Info("using config file")
			return content
		}
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("file", loc).Fatal("could not read config file")
		}
	}
	log.Fatalf("no config file found; tried %v", locations)
	return nil
}
