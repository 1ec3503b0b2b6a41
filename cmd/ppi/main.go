package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/agenthands/ppinet/internal/bootstrap"
	"github.com/agenthands/ppinet/internal/config"
	"github.com/agenthands/ppinet/internal/termui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "ppi",
		Short:         "Protein-protein interaction network analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	defaultPath := os.Getenv("CONFIG_PATH")
	if defaultPath == "" {
		defaultPath = "config/config.toml"
	}
	root.PersistentFlags().StringVar(&configPath, "config", defaultPath, "TOML config file (optional)")

	root.AddCommand(newAnalyzeCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))
	return root
}

func loadApp(ctx context.Context, configPath string) (*bootstrap.App, error) {
	_ = godotenv.Load()
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg)
}

func newAnalyzeCmd(configPath *string) *cobra.Command {
	var providerID string
	var top int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze <protein>",
		Short: "Fetch interactions for a protein and print centrality rankings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Logger.Sync() }()
			if top > 0 {
				app.Pipeline.TopN = top
			}

			a := app.Pipeline.Run(cmd.Context(), providerID, args[0])
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(a)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), termui.Render(a))
			return nil
		},
	}
	cmd.Flags().StringVar(&providerID, "provider", "biogrid", "interaction database: biogrid|string")
	cmd.Flags().IntVar(&top, "top", 0, "entries per ranking (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full analysis as JSON")
	return cmd
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI and JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Logger.Sync() }()
			return app.Serve()
		},
	}
}
