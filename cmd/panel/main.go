package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	panel "github.com/xerodma/panel"
	"github.com/xerodma/panel/api/staffapi"
	"github.com/xerodma/panel/cmd/panel/config"
	"github.com/xerodma/panel/internal/logger"
	"github.com/xerodma/panel/session"
)

func main() {
	var configFile string
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}
	config.Load(configFile)
	c := config.Get()
	if err := logger.Init(c.Logging.Internal); err != nil {
		log.WithError(err).Fatal("could not init logger")
	}
	log.Info("Loaded Config")

	backs, err := config.LoadStorageBackends(c.Storage)
	if err != nil {
		log.Fatal(err)
	}
	log.Info("Connected to storage")

	sessions, err := session.NewCodec([]byte(c.Sessions.Secret), c.Sessions.TTL(), c.Sessions.Issuer)
	if err != nil {
		log.Fatal(err)
	}

	p, err := panel.NewPanel(
		c.Server, backs, sessions,
		&staffapi.Options{
			UsersEnabled:    c.API.UsersEnabled,
			DownloadBaseURL: c.API.DownloadBaseURL,
			LoginPath:       c.API.LoginPath,
			SessionTTL:      c.Sessions.TTL(),
		},
	)
	if err != nil {
		log.Fatal(err)
	}
	log.Info("Initialized panel")

	p.Start()
}
