package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored access token",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	next, err := app.client.Logout()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signed out. Next: %s (run `careercore login`)\n", next)
	return nil
}
