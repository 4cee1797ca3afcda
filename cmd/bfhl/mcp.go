package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gonkalabs/bfhl-go/internal/mcptool"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the classifier as an MCP tool over stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		s := mcptool.NewServer(cfg.Identity, version)
		return mcptool.ServeStdio(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout(), slog.Default())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
