package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xerodma/panel/storage/model"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage staff accounts",
}

var userRole string
var userDisplayName string

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Create a staff account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadBackends(); err != nil {
			return err
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		u, err := backends.Users.Create(args[0], password, userRole, userDisplayName)
		if err != nil {
			return err
		}
		log.Printf("created user %s with role %s", u.Username, u.Role)
		return nil
	},
}

var userPasswdCmd = &cobra.Command{
	Use:   "passwd <username>",
	Short: "Set a new password for a staff account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadBackends(); err != nil {
			return err
		}
		password, err := promptPassword("New password: ")
		if err != nil {
			return err
		}
		_, err = backends.Users.Update(args[0], nil, nil, &password, nil)
		return err
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List staff accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadBackends(); err != nil {
			return err
		}
		users, err := backends.Users.List()
		if err != nil {
			return err
		}
		for _, u := range users {
			state := ""
			if u.Disabled {
				state = " (disabled)"
			}
			fmt.Printf("%d\t%s\t%s%s\n", u.ID, u.Username, u.Role, state)
		}
		return nil
	},
}

var userRmCmd = &cobra.Command{
	Use:   "rm <username>",
	Short: "Delete a staff account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadBackends(); err != nil {
			return err
		}
		return backends.Users.Delete(args[0])
	},
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func init() {
	userAddCmd.Flags().StringVar(&userRole, "role", model.RoleStaff, "role of the new account")
	userAddCmd.Flags().StringVar(&userDisplayName, "display-name", "", "display name of the new account")
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userPasswdCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userRmCmd)
}
