package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/backoffice/database/fixtures"
)

// backoffice fixtures — decode the embedded seed data and print a summary.
// Useful as a sanity check after editing the JSON documents.
var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Summarize the embedded seed data",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := fixtures.Load()
		if err != nil {
			return err
		}

		fmt.Printf("products:  %d\n", len(set.Products))
		fmt.Printf("customers: %d\n", len(set.Customers))
		fmt.Printf("orders:    %d\n", len(set.Orders))

		var revenue float64
		for _, o := range set.Orders {
			revenue += o.Total
		}
		fmt.Printf("order revenue: %.2f\n", revenue)
		return nil
	},
}
