package main

import (
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "orderflow",
		Short: "Order fulfillment and production workflow engine",
		Long: `orderflow tracks machine orders from draft to completion: production steps
per line item, accessory readiness, the inventory ledger and the dispatch gate.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("env-file", ".env", "dotenv file loaded before the environment")
	root.AddCommand(newServeCommand(), newMigrateCommand(), newSeedCommand())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
