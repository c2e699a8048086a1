package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config file",
	Long: `Prints the built-in configuration as YAML.

Save it to ~/.tetris/configs/tetris.yaml or ./configs/tetris.yaml and edit
it, or pass any copy with --config.

Examples:
  tetris config > ~/.tetris/configs/tetris.yaml
  tetris config > my-tetris.yaml && tetris play --config my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
	return err
}
