package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start the runner directly, without the menu.

Controls:
  Space/Up/W/Click - Jump (also starts and restarts)
  R                - Restart at any time
  Esc/B/Q/Ctrl+C   - Quit
  Ctrl+S           - Save a text screenshot to ~/.runner/screenshots

Examples:
  runner play
  runner play --seed 42
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.Run(store, runtimeConfig(), logger)
}
