// Package main provides the entry point for the CareerCore command-line client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careercore",
	Short: "CareerCore command-line client",
	Long: "CareerCore analyzes resumes against job descriptions, tracks internship listings " +
		"and runs interview practice against the CareerCore API.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupApp,
}

var (
	configPath      string
	apiURLFlag      string
	sessionFileFlag string
	logLevelFlag    string
	verboseFlag     bool
	noValidateFlag  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a careercore.yaml or careercore.json config file")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "CareerCore API base URL")
	rootCmd.PersistentFlags().StringVar(&sessionFileFlag, "session-file", "", "File holding the access token")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noValidateFlag, "no-validate", false, "Skip JSON schema validation of API responses")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Interrupts cancel in-flight requests and stop audio playback.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
