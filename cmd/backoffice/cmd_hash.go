package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/backoffice/pkg/auth"
)

// backoffice hash — bcrypt a password for ADMIN_PASSWORD_HASH.
var hashCmd = &cobra.Command{
	Use:   "hash <password>",
	Short: "Generate a bcrypt hash for the admin password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := auth.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	},
}
