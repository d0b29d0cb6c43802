package main

import (
	"fmt"

	"github.com/jonathan/careercore/internal/types"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a CareerCore account",
	Long:  "Create a CareerCore account and store the returned access token so later commands are authenticated.",
	RunE:  runRegister,
}

var (
	registerName     string
	registerEmail    string
	registerPassword string
	registerSchool   string
	registerMajor    string
)

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name (required)")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address (required)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Password, at least 8 characters (required)")
	registerCmd.Flags().StringVar(&registerSchool, "school", "", "School")
	registerCmd.Flags().StringVar(&registerMajor, "major", "", "Major")

	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	resp, err := app.client.Register(cmd.Context(), types.RegisterRequest{
		Name:     registerName,
		Email:    registerEmail,
		Password: registerPassword,
		School:   registerSchool,
		Major:    registerMajor,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Account created. Signed in as %s <%s>\n", resp.User.Name, resp.User.Email)
	return nil
}
