// Package main is the back office CLI.
//
//	backoffice serve       # start the HTTP server
//	backoffice routes      # list registered API routes
//	backoffice fixtures    # summarize the embedded seed data
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "backoffice",
	Short: "E-commerce admin back office",
	Long:  "In-memory state service behind the admin dashboard: products, customers, orders, and derived table views.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(fixturesCmd)
	rootCmd.AddCommand(hashCmd)
}
