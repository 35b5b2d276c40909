package config

import (
	"time"

	"github.com/pkg/errors"
)

// sessionsConf configures the stateless session tokens issued at login.
type sessionsConf struct {
	// Secret signs session tokens; it is required and must be kept out
	// of version control
	Secret string `yaml:"secret"`
	// TTLHours bounds the session lifetime; expiry is the only way a
	// session ends
	TTLHours int `yaml:"ttl_hours"`
	// Issuer is the iss claim of minted tokens
	Issuer string `yaml:"issuer"`
}

func (c *sessionsConf) validate() error {
	if c.Secret == "" {
		return errors.New("error in sessions conf: secret must be specified")
	}
	if c.TTLHours < 0 {
		return errors.New("error in sessions conf: ttl_hours must not be negative")
	}
	return nil
}

// TTL returns the configured session lifetime
func (c sessionsConf) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

var defaultSessionsConf = sessionsConf{
	TTLHours: 24,
	Issuer:   "xerodma-panel",
}
