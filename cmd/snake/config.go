package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/config"
)

var flagShowDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration play and sim would use, after the config
file search and the difficulty preset, as YAML.

Config search order:
  1. --config <path>
  2. ~/.snake/configs/snake.yaml
  3. ./configs/snake.yaml
  4. built-in defaults

Examples:
  snake config > ~/.snake/configs/snake.yaml
  snake config --difficulty hard
  snake config --default`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagShowDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(preset)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
