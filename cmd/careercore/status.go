package main

import (
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a session token is stored",
	Long:  "Show whether a session token is stored and, when it is a JWT, its subject and expiry as claimed by the token. The server remains the authority on validity.",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	app.printer.PrintStatus(app.store.Token(), time.Now())
	return nil
}
