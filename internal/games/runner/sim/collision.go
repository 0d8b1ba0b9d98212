package sim

import (
	"iter"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Overlaps reports whether two hitboxes touch or intersect.
func Overlaps(a, b core.Box) bool {
	return a.Overlaps(b)
}

// Any reports whether the player overlaps any obstacle, stopping at the
// first hit.
func Any(player core.Box, obstacles iter.Seq[core.Box]) bool {
	for o := range obstacles {
		if Overlaps(player, o) {
			return true
		}
	}
	return false
}
