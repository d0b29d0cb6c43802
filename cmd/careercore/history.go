package main

import (
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List your most recent analyses",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	records, err := app.client.AnalysisHistory(cmd.Context())
	if err != nil {
		return err
	}
	app.printer.PrintHistory(records)
	return nil
}
