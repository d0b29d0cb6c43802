package main

import (
	"github.com/jonathan/careercore/internal/types"
	"github.com/spf13/cobra"
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the signed-in user's profile",
	RunE:  runMe,
}

var meUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the signed-in user's name, school or major",
	RunE:  runMeUpdate,
}

var (
	meName   string
	meSchool string
	meMajor  string
)

func init() {
	meUpdateCmd.Flags().StringVar(&meName, "name", "", "New name")
	meUpdateCmd.Flags().StringVar(&meSchool, "school", "", "New school")
	meUpdateCmd.Flags().StringVar(&meMajor, "major", "", "New major")

	meCmd.AddCommand(meUpdateCmd)
	rootCmd.AddCommand(meCmd)
}

func runMe(cmd *cobra.Command, args []string) error {
	user, err := app.client.Me(cmd.Context())
	if err != nil {
		return err
	}
	app.printer.PrintUser(user)
	return nil
}

func runMeUpdate(cmd *cobra.Command, args []string) error {
	// Only flags given on the command line are sent, so a field can be cleared
	// with an explicit empty value.
	var update types.UserUpdate
	if cmd.Flags().Changed("name") {
		update.Name = &meName
	}
	if cmd.Flags().Changed("school") {
		update.School = &meSchool
	}
	if cmd.Flags().Changed("major") {
		update.Major = &meMajor
	}

	user, err := app.client.UpdateMe(cmd.Context(), update)
	if err != nil {
		return err
	}
	app.printer.PrintUser(user)
	return nil
}
