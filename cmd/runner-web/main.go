// runner-web runs the endless runner in a window, or in a browser when
// built for js/wasm.
//
// Usage:
//
//	runner-web [--scale 2] [--seed 42] [--db ~/.runner/scores.db]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/gui"
)

var (
	flagScale    int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner-web",
	Short: "Endless Runner in a window or a browser tab",
	Long: `Play the endless runner with pixel graphics.

Controls:
  Space/Up/W/Click/Tap - Jump (also starts and restarts)
  R                    - Restart at any time
  Esc/Q                - Quit

Examples:
  runner-web
  runner-web --scale 2 --seed 42`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagScale, "scale", 1, "Window scale factor")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database (ignored in the browser)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner-web",
		Level:           level,
	})

	runner.SetConfigPath(flagConfig)

	scores, closeScores := openScores(flagDBPath, logger)
	defer closeScores()

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed

	return gui.Run(gui.NewApp(scores, cfg, logger), max(1, flagScale))
}
