// Package storage persists finished runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The record types build on every platform; the SQLite store is left out
// of js/wasm builds.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalPlayer is the player name recorded for runs played in a local terminal.
const LocalPlayer = "local"

// Run is one finished run.
type Run struct {
	ID        int64
	GameID    string
	Player    string        // SSH user or LocalPlayer
	SessionID string        // Groups runs played in one session
	Score     int           // Final floored score
	Speed     float64       // Scroll speed at the moment of collision, px/s
	Duration  time.Duration // Time spent running
	CreatedAt time.Time
}

// Stats contains aggregated statistics for a game.
type Stats struct {
	GameID     string
	Runs       int
	HighScore  int
	AvgScore   float64
	TopSpeed   float64
	PlayTime   time.Duration
	LastPlayed time.Time
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
