package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/engine"
	"github.com/vovakirdan/neon-snake/internal/events"
	"github.com/vovakirdan/neon-snake/internal/loop"
	"github.com/vovakirdan/neon-snake/internal/platform/tui"
)

var (
	flagPath       string
	flagTicks      int
	flagMultiplier float64
	flagShowBoard  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game from a scripted path",
	Long: `Run a game without a terminal UI on a virtual clock.

The path holds one step per tick: U, D, L or R steers, '.' keeps the
current heading. After the path runs out the snake keeps going until
--ticks is reached or the game ends. Events are logged to stderr and a
summary is printed to stdout.

Examples:
  snake sim --seed 7 --path RRRRDDDD
  snake sim --seed 7 --path R --ticks 200 --board
  snake sim --path UUUULLLL --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimCmd,
}

func init() {
	simCmd.Flags().StringVar(&flagPath, "path", "", "Steps, one per tick: U, D, L, R or '.'")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Maximum ticks (0 = length of --path)")
	simCmd.Flags().Float64Var(&flagMultiplier, "speed", 0, "Speed multiplier (0 = config value)")
	simCmd.Flags().BoolVar(&flagShowBoard, "board", false, "Print the final board")
}

// simOptions describes one headless run.
type simOptions struct {
	Path       string
	Ticks      int
	Multiplier float64
	Seed       int64
}

// simResult summarizes a headless run.
type simResult struct {
	Snapshot engine.Snapshot
	Elapsed  time.Duration // Virtual time spent ticking
	Eaten    int
}

func runSimCmd(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(preset)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "sim")
	if err != nil {
		return err
	}

	res, err := simulate(cfg, simOptions{
		Path:       flagPath,
		Ticks:      flagTicks,
		Multiplier: flagMultiplier,
		Seed:       flagSeed,
	}, logger)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, res)
	if flagShowBoard {
		fmt.Fprintln(os.Stdout, tui.Frame(res.Snapshot))
	}
	return nil
}

// simulate plays opts on a ManualClock and returns the final state.
func simulate(cfg config.SnakeConfig, opts simOptions, logger *log.Logger) (simResult, error) {
	steps, err := parsePath(opts.Path)
	if err != nil {
		return simResult{}, err
	}
	ticks := opts.Ticks
	if ticks <= 0 {
		ticks = len(steps)
	}

	engineOpts := []engine.Option{engine.WithLogger(logger)}
	if opts.Seed != 0 {
		engineOpts = append(engineOpts, engine.WithSeed(opts.Seed))
	}
	e, err := engine.New(cfg, engineOpts...)
	if err != nil {
		return simResult{}, err
	}

	var res simResult
	e.Bus().SubscribeAll(func(ev events.Event) {
		switch ev := ev.(type) {
		case events.FoodEaten:
			res.Eaten++
			logger.Info("food eaten", "tick", ev.Tick, "at", ev.At, "score", ev.Score)
		case events.Tick:
			logger.Debug("tick", "tick", ev.Tick, "head", ev.Snake[0], "score", ev.Score)
		}
	})

	start := time.Unix(0, 0)
	clock := loop.NewManualClock(start)
	l := loop.New(e, clock, loop.WithLogger(logger))
	defer l.Close()

	if opts.Multiplier != 0 {
		if err := l.SetSpeedMultiplier(opts.Multiplier); err != nil {
			return simResult{}, err
		}
	}

	for i := 0; i < ticks; i++ {
		if i < len(steps) && steps[i] != core.HeadingNone {
			if err := l.SetPendingHeading(steps[i]); err != nil {
				return simResult{}, err
			}
		}
		if l.Phase() == core.PhaseIdle {
			if err := l.Start(); err != nil {
				return simResult{}, err
			}
		}
		if !clock.RunNext() {
			break
		}
		if l.Phase() != core.PhaseRunning {
			break
		}
	}

	res.Snapshot = l.Snapshot()
	res.Elapsed = clock.Now().Sub(start)
	return res, nil
}

// parsePath turns "RRD.L" into headings; '.' is HeadingNone.
func parsePath(path string) ([]core.Heading, error) {
	steps := make([]core.Heading, 0, len(path))
	for i, r := range path {
		if r == '.' {
			steps = append(steps, core.HeadingNone)
			continue
		}
		h, ok := core.ParseHeading(string(r))
		if !ok {
			return nil, fmt.Errorf("invalid step %q at position %d (want U, D, L, R or '.')", r, i)
		}
		steps = append(steps, h)
	}
	return steps, nil
}

func printSummary(w io.Writer, res simResult) {
	snap := res.Snapshot
	fmt.Fprintf(w, "round:   %s\n", snap.Round)
	fmt.Fprintf(w, "phase:   %s\n", snap.Phase)
	if snap.Phase == core.PhaseGameOver {
		fmt.Fprintf(w, "reason:  %s\n", snap.Reason)
	}
	fmt.Fprintf(w, "ticks:   %d (%s virtual)\n", snap.Tick, res.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "score:   %d (%d food)\n", snap.Score, res.Eaten)
	fmt.Fprintf(w, "length:  %d\n", len(snap.Snake))
	fmt.Fprintf(w, "head:    %s\n", snap.Head())
	fmt.Fprintf(w, "speed:   %d ticks/s\n", snap.TickRate)
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", 24))
}
