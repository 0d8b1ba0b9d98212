package sim

import (
	"iter"
	"slices"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Rand is the random source used for obstacle sizes.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Obstacle is a ground obstacle scrolling toward the player.
type Obstacle struct {
	ID     uint64
	Offset float64 // Distance travelled from the right edge of the field
	Width  float64
	Height float64
}

// ObstacleField owns the live obstacles, ordered by spawn time.
type ObstacleField struct {
	cfg        config.ObstacleConfig
	fieldWidth float64
	rng        Rand
	obstacles  []Obstacle
	nextID     uint64
}

// NewObstacleField creates an empty field of the given visible width.
func NewObstacleField(cfg config.ObstacleConfig, fieldWidth float64, rng Rand) *ObstacleField {
	return &ObstacleField{
		cfg:        cfg,
		fieldWidth: fieldWidth,
		rng:        rng,
		obstacles:  make([]Obstacle, 0, 8),
	}
}

// Spawn adds an obstacle just past the right edge. Its height is the base
// height scaled by a uniform factor in [MinScale, MaxScale).
func (f *ObstacleField) Spawn() Obstacle {
	scale := f.cfg.MinScale + f.rng.Float64()*(f.cfg.MaxScale-f.cfg.MinScale)
	height := f.cfg.BaseHeight * scale

	f.nextID++
	o := Obstacle{
		ID:     f.nextID,
		Offset: f.cfg.SpawnOffset,
		Width:  height * f.cfg.AspectRatio,
		Height: height,
	}
	f.obstacles = append(f.obstacles, o)
	return o
}

// Advance moves every obstacle left by speed*dt.
func (f *ObstacleField) Advance(dt, speed float64) {
	for i := range f.obstacles {
		f.obstacles[i].Offset += speed * dt
	}
}

// Reap removes obstacles whose right edge has crossed leftBound and
// returns how many were removed.
func (f *ObstacleField) Reap(leftBound float64) int {
	before := len(f.obstacles)
	f.obstacles = slices.DeleteFunc(f.obstacles, func(o Obstacle) bool {
		return f.Box(o).Right() < leftBound
	})
	return before - len(f.obstacles)
}

// LeftBound is the reap line: the left edge of the field minus the margin.
func (f *ObstacleField) LeftBound() float64 {
	return -f.cfg.ReapMargin
}

// Box returns the obstacle's hitbox in field coordinates.
func (f *ObstacleField) Box(o Obstacle) core.Box {
	return core.NewBox(f.fieldWidth-o.Offset-o.Width, 0, o.Width, o.Height)
}

// All yields the live obstacles in spawn order. Each range over the
// returned sequence sees the field as it is at that moment.
func (f *ObstacleField) All() iter.Seq[Obstacle] {
	return func(yield func(Obstacle) bool) {
		for _, o := range f.obstacles {
			if !yield(o) {
				return
			}
		}
	}
}

// Boxes yields the hitboxes of the live obstacles in spawn order.
func (f *ObstacleField) Boxes() iter.Seq[core.Box] {
	return func(yield func(core.Box) bool) {
		for o := range f.All() {
			if !yield(f.Box(o)) {
				return
			}
		}
	}
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// Clear removes every obstacle. IDs keep increasing across clears.
func (f *ObstacleField) Clear() {
	f.obstacles = f.obstacles[:0]
}
