//go:build !js

package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/platform/gui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// openScores opens the scores database. On failure the game runs without
// saving and the returned store is nil.
func openScores(path string, logger *log.Logger) (gui.Scores, func()) {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil, func() {}
	}
	return store, func() { store.Close() }
}
