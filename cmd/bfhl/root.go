package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gonkalabs/bfhl-go/internal/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "bfhl",
	Short: "Token classification service",
	Long: `bfhl classifies an array of string tokens into odd numbers, even numbers,
alphabets and special characters, and reports their numeric sum and a
reversed alternating-case concat string.

Without a subcommand it runs the HTTP server (same as "bfhl serve").`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.Flags().AddFlagSet(serveFlags())
}

// loadConfig loads configuration and installs the configured logger as the
// process default.
func loadConfig() (*config.Cfg, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))
	return cfg, nil
}
