package config

import (
	"github.com/pkg/errors"

	"github.com/xerodma/panel/storage"
	"github.com/xerodma/panel/storage/model"
)

var errDataDirRequired = errors.New("error in storage conf: data_dir must be specified")

type storageConf struct {
	Driver  storage.DriverType `yaml:"driver"`
	DataDir string             `yaml:"data_dir"`
	DSN     string             `yaml:"dsn"`
	storage.DSNConf
	Pool  storage.PoolConf `yaml:"pool"`
	Debug bool             `yaml:"debug"`
}

func (c *storageConf) validate() error {
	if c.Driver == storage.DriverSQLite {
		if c.DataDir == "" {
			return errDataDirRequired
		}
		return nil
	}
	var err error
	if c.DSN == "" {
		c.DSN, err = storage.DSN(c.Driver, c.DSNConf)
	}
	return err
}

var defaultStorageConf = storageConf{
	Driver: storage.DriverSQLite,
	DSNConf: storage.DSNConf{
		User: "panel",
		Host: "localhost",
		DB:   "panel",
	},
	Debug: false,
}

// LoadStorageBackends loads and returns the storage backends for the passed config
func LoadStorageBackends(c storageConf) (model.Backends, error) {
	cfg := storage.Config{
		Driver:  c.Driver,
		DSN:     c.DSN,
		DataDir: c.DataDir,
		Debug:   c.Debug,
		Pool:    c.Pool,
	}
	return storage.LoadStorageBackends(cfg)
}
