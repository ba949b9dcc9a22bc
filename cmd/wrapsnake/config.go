package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wrapsnake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Config search order:
  1. --config <path>
  2. ~/.wrapsnake/config.yaml
  3. ./configs/snake.yaml
  4. Embedded default`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default config instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	data, err := config.Marshal(loaded.Config)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", loaded.Source)
	_, err = out.Write(data)
	return err
}
