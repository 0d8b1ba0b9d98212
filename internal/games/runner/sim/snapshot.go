package sim

import "github.com/vovakirdan/tui-runner/internal/core"

// PlayerView is the player as a renderer sees it.
type PlayerView struct {
	Box      core.Box
	Velocity float64
	Grounded bool
}

// ObstacleView is one obstacle as a renderer sees it.
type ObstacleView struct {
	ID     uint64
	Offset float64
	Height float64
	Box    core.Box
}

// Snapshot is a read-only copy of everything a frontend needs to draw a frame.
type Snapshot struct {
	State          State
	Score          int    // Floored score
	FormattedScore string // Zero-padded score, e.g. "00042"
	GameOver       bool
	FinalScore     int // Score at the moment of collision; 0 unless GameOver
	Speed          float64
	SpawnInterval  float64
	Ticks          uint64
	Field          core.Box
	Player         PlayerView
	Obstacles      []ObstacleView
}

// Snapshot captures the current state.
func (s *Simulation) Snapshot() Snapshot {
	score := int(s.score)
	snap := Snapshot{
		State:          s.state,
		Score:          score,
		FormattedScore: FormatScore(s.score, s.cfg.Scoring.Digits),
		GameOver:       s.state == StateGameOver,
		Speed:          s.difficulty.Speed(),
		SpawnInterval:  s.difficulty.SpawnInterval(),
		Ticks:          s.ticks,
		Field:          core.NewBox(0, 0, s.cfg.Field.Width, s.cfg.Field.Height),
		Player: PlayerView{
			Box:      s.PlayerBox(),
			Velocity: s.player.Velocity(),
			Grounded: s.player.Grounded(),
		},
		Obstacles: make([]ObstacleView, 0, s.field.Len()),
	}
	if snap.GameOver {
		snap.FinalScore = score
	}
	for o := range s.field.All() {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{
			ID:     o.ID,
			Offset: o.Offset,
			Height: o.Height,
			Box:    s.field.Box(o),
		})
	}
	return snap
}
