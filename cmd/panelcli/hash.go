package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// hashCmd hashes passwords for manual database seeding.
var hashCmd = &cobra.Command{
	Use:   "hash <password>...",
	Short: "Print bcrypt hashes for the given passwords",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, password := range args {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
			if err != nil {
				return err
			}
			fmt.Printf("%q: %s\n", password, hash)
		}
		return nil
	},
}
