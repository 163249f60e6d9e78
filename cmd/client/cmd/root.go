package cmd

import (
	"fmt"
	"os"

	itemcmd "itemstore/cmd/client/cmd/item"
	"itemstore/internal/app/client"
	"itemstore/internal/app/client/config"
	"itemstore/internal/utils/logger"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "itemstore",
	Short: "itemstore - CLI client for the items API",
	Long: `itemstore is a command line client for the items service.

It lists, creates, updates and deletes items through the HTTP API and
keeps a local cache of fetched items for offline listing.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize the client: %w", err)
	}

	cmd.SetContext(client.IntoContext(cmd.Context(), app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "items API server address")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(itemcmd.ItemsCmd)
}
