package main

import (
	"log"

	"github.com/spf13/cobra"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Manage guide password protection",
}

var guideProtectCmd = &cobra.Command{
	Use:   "protect <guide-id>",
	Short: "Set or rotate a guide's access password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadBackends(); err != nil {
			return err
		}
		password, err := promptPassword("Guide password: ")
		if err != nil {
			return err
		}
		if password == "" {
			log.Fatal("empty password would remove protection; use 'guide unprotect' for that")
		}
		if err := backends.Guides.SetSecret(args[0], password); err != nil {
			return err
		}
		log.Printf("guide %s is now password protected", args[0])
		return nil
	},
}

var guideUnprotectCmd = &cobra.Command{
	Use:   "unprotect <guide-id>",
	Short: "Remove a guide's access password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadBackends(); err != nil {
			return err
		}
		if err := backends.Guides.SetSecret(args[0], ""); err != nil {
			return err
		}
		log.Printf("guide %s is no longer password protected", args[0])
		return nil
	},
}

func init() {
	guideCmd.AddCommand(guideProtectCmd)
	guideCmd.AddCommand(guideUnprotectCmd)
}
