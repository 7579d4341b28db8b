package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arrstack/cfpattern/internal/core/api"
	"github.com/arrstack/cfpattern/internal/core/config"
	"github.com/arrstack/cfpattern/internal/core/db"
	"github.com/arrstack/cfpattern/internal/core/formats"
	"github.com/arrstack/cfpattern/internal/core/server"
	"github.com/arrstack/cfpattern/internal/logging"
)

const Version = "0.1.0"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("host", "0.0.0.0", "HTTP server host")
	serveCmd.Flags().Int("port", 8780, "HTTP server port")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	log := logging.Component("serve")

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("host") {
		host, _ := cmd.Flags().GetString("host")
		cfg.Host = host
	}
	if cmd.Flags().Changed("port") {
		port, _ := cmd.Flags().GetInt("port")
		cfg.Port = port
	}

	if dbURL == "" {
		return fmt.Errorf("--db-url required")
	}
	database, err := db.Open(dbURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	// Serving against an unmigrated database fails on the first query;
	// catch it at startup with a clear message instead.
	var migrationID string
	checkQuery := `SELECT migration_id FROM migrations WHERE migration_id = '001_custom_formats.sql'`
	err = database.Get(&migrationID, database.Rebind(checkQuery))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("migration 001_custom_formats not applied - run 'cfpattern migrate' first")
		}
		return fmt.Errorf("failed to check migrations: %w", err)
	}

	queries, err := db.LoadQueries(database)
	if err != nil {
		return fmt.Errorf("failed to load queries: %w", err)
	}

	store, err := formats.NewStore(database, queries, logging.Component("formats"))
	if err != nil {
		return fmt.Errorf("failed to create format store: %w", err)
	}

	service := api.NewService(database, store, *cfg, logging.Component("api"))

	httpServer, err := server.NewHTTPServer(*cfg, service.Router(), logging.Component("server"))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Info().
		Str("version", Version).
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("starting cfpattern API")

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("shutting down gracefully")
		return httpServer.Shutdown(ctx)
	}
}
