package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/xerodma/panel/cmd/panel/config"
	"github.com/xerodma/panel/storage/model"
)

var rootCmd = &cobra.Command{
	Use:   "panelcli",
	Short: "panelcli can help you manage your XERODMA staff panel",
	Long:  "panelcli can help you manage your XERODMA staff panel",
}

var configFile string
var backends model.Backends

func loadBackends() error {
	config.Load(configFile)
	log.Println("Loaded Config")
	c := config.Get()

	var err error
	backends, err = config.LoadStorageBackends(c.Storage)
	if err != nil {
		log.Fatal(err)
	}
	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "the config file to use")
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(hashCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
