package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jonathan/careercore/internal/client"
	"github.com/jonathan/careercore/internal/config"
	"github.com/jonathan/careercore/internal/observability"
	"github.com/jonathan/careercore/internal/session"
	"github.com/spf13/cobra"
)

// application holds the dependencies shared by every command.
type application struct {
	cfg     config.Config
	logger  *slog.Logger
	store   *session.FileStore
	client  *client.Client
	printer *observability.Printer
}

var app *application

// setupApp resolves configuration (flags over env over file over defaults) and
// builds the API client before any command runs.
func setupApp(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := config.Config{
		APIURL:      apiURLFlag,
		SessionFile: sessionFileFlag,
		LogLevel:    logLevelFlag,
		Verbose:     verboseFlag,
	}
	cfg := flags.MergeWithDefaults(*loaded)
	cfg.ValidateResponses = loaded.ValidateResponses && !noValidateFlag
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := observability.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Verbose)
	if err != nil {
		return err
	}

	path := cfg.SessionFile
	if path == "" {
		path, err = session.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to resolve session file: %w", err)
		}
	}
	store := session.NewFileStore(path)

	opts := []client.Option{
		client.WithLogger(logger),
		client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if !cfg.ValidateResponses {
		opts = append(opts, client.WithoutResponseValidation())
	}

	app = &application{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		client:  client.New(cfg.APIURL, store, opts...),
		printer: observability.NewPrinter(cmd.OutOrStdout()),
	}
	logger.Debug("client configured", "api_url", cfg.APIURL, "session_file", path)
	return nil
}
