package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize daybook storage",
	Long:  "Init creates the configuration directory, a default config.yaml, and an empty data store.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config and backend are created by PersistentPreRunE.
		fmt.Println("Daybook initialized")
		return nil
	},
}
