package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/gonkalabs/bfhl-go/internal/api"
)

var classifyCmd = &cobra.Command{
	Use:   "classify TOKEN...",
	Short: "Classify tokens and print the response JSON",
	Example: `  bfhl classify a 1 334 4 R '$'
  bfhl classify abc 123 '!!@'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resp, err := api.Process(cfg.Identity, args)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
