// Package main provides the inventory CLI: the HTTP API server and offline
// access to the item store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/inventory/internal/config"
	"github.com/JonMunkholm/inventory/internal/core"
	"github.com/JonMunkholm/inventory/internal/database"
	"github.com/JonMunkholm/inventory/internal/logging"
)

var (
	// configFile is set by the --config flag or CONFIG_FILE.
	configFile string

	cfg     *config.Config
	repo    *database.Repository
	service *core.Service
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Inventory tracking service",
	Long: `Inventory tracks stock items by SKU. It serves a JSON API under
/api/item and can list or export the item store from the command line.

Configuration comes from environment variables, an optional .env file in
the working directory, and an optional config file (--config).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, toml or json; default: $CONFIG_FILE)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
}

// setup loads configuration, configures logging and opens the item store.
func setup(cmd *cobra.Command, args []string) error {
	// Overload so .env wins over the inherited environment.
	if err := godotenv.Overload(); err == nil {
		slog.Debug("loaded .env file")
	}

	path := configFile
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}

	var err error
	cfg, err = config.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cmd == serveCmd {
		logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	} else {
		// stdout carries command output.
		slog.SetDefault(logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format))
	}
	slog.Debug("configuration loaded", "config", cfg.String())

	repo, err = database.Open(cmd.Context(), cfg.Database)
	if err != nil {
		return fmt.Errorf("open item store: %w", err)
	}

	service, err = core.NewService(repo, core.ExportOptions{
		Dir:      cfg.Export.Dir,
		NullText: cfg.Export.NullText,
	})
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func teardown() error {
	if repo == nil {
		return nil
	}
	if err := repo.Close(); err != nil {
		return fmt.Errorf("close item store: %w", err)
	}
	return nil
}

// commandContext returns cmd's context, or Background when run outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
