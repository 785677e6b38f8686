// snake is a neon-styled snake game for the terminal.
//
// Usage:
//
//	snake play      - Play in the terminal
//	snake sim       - Run a headless, deterministic game
//	snake config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--seed <value>        - RNG seed for reproducible food placement
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Where play writes its log (default: discarded)
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Neon Snake - the classic snake game in your terminal",
	Long: `Neon Snake is a terminal take on the classic snake game: eat food,
grow longer, and avoid the walls and your own tail. The snake speeds up
every 50 points.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless game from a scripted path
  config   - Print the effective configuration

Examples:
  snake play
  snake play --difficulty hard
  snake sim --seed 7 --path RRRRDDDD
  snake config --config ./my-snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (play only; default discards logs)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file, applies the preset and validates.
func loadConfig(preset config.DifficultyPreset) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	config.ApplySnakePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}

// openLogFile opens --log-file for appending, or returns io.Discard.
func openLogFile() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
