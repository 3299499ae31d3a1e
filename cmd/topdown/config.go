package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-topdown/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying the
config file search order, the difficulty preset and the --fps flag.

The output is valid YAML and can be saved as a starting point:
  topdown config > ~/.topdown/configs/topdown.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
