package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/platform/tui"
)

var flagNoMenu bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL - Steer (the first direction starts the game)
  Space/P          - Start or pause
  R                - Reset
  +/-              - Faster/slower
  Mouse            - Click the on-screen pad, or drag to swipe
  Q/Esc/Ctrl+C     - Quit

Without --difficulty a menu asks for a preset first.

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the difficulty menu")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	if preset == "" && !flagNoMenu {
		chosen, ok, menuErr := tui.RunDifficultyMenu(width, height)
		if menuErr != nil {
			return menuErr
		}
		if !ok {
			return nil
		}
		preset = chosen
	}

	cfg, err := loadConfig(preset)
	if err != nil {
		return err
	}

	needW, needH := tui.MinTerminalSize(cfg.Grid)
	if width < needW || height < needH {
		return fmt.Errorf("terminal is %dx%d, a %dx%d grid needs at least %dx%d",
			width, height, cfg.Grid.Width, cfg.Grid.Height, needW, needH)
	}

	w, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(w, "snake")
	if err != nil {
		return err
	}
	logger.Info("starting", "difficulty", preset, "grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height), "seed", flagSeed)

	return tui.Run(tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	})
}
