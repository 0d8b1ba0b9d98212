package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// State is the lifecycle of a simulation.
type State int

const (
	StateIdle     State = iota // Waiting for the first jump
	StateRunning               // Ticks advance the world
	StateGameOver              // The player hit an obstacle
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Intent is an abstract player request, already mapped from device input.
type Intent int

const (
	IntentJump    Intent = iota // Jump, or start/restart when not running
	IntentRestart               // Reset the run, valid in any state
)

// TickResult describes what happened during one tick.
type TickResult struct {
	Collided bool // The run ended this tick
	Spawned  bool // A new obstacle entered the field
	Reaped   int  // Obstacles removed past the left edge
}

// Simulation owns the whole runner state and advances it one tick at a time.
// It is not safe for concurrent use: a single driver calls Apply and Frame
// (or Tick), never overlapping.
type Simulation struct {
	cfg        config.RunnerConfig
	clock      *Stepper
	player     *Player
	field      *ObstacleField
	difficulty *Difficulty

	state      State
	score      float64 // points
	spawnTimer float64 // ms since the last spawn
	ticks      uint64
}

// New creates an idle simulation. rng sizes the obstacles; pass a seeded
// source for reproducible runs.
func New(cfg config.RunnerConfig, rng Rand) *Simulation {
	return &Simulation{
		cfg:        cfg,
		clock:      NewStepper(cfg.Clock.MaxDelta),
		player:     NewPlayer(cfg.Physics),
		field:      NewObstacleField(cfg.Obstacles, cfg.Field.Width, rng),
		difficulty: NewDifficulty(cfg.Difficulty),
		state:      StateIdle,
	}
}

// Apply handles an intent between ticks. now is the host timestamp in ms
// and becomes the clock reference when the intent starts a run.
func (s *Simulation) Apply(intent Intent, now float64) {
	switch intent {
	case IntentJump:
		if s.state == StateRunning {
			s.player.Jump()
			return
		}
		s.Start(now)
	case IntentRestart:
		s.Restart(now)
	}
}

// Restart abandons the current run, whatever its state, and starts a new one.
func (s *Simulation) Restart(now float64) {
	s.Start(now)
}

// Start resets every value of the run and begins running.
func (s *Simulation) Start(now float64) {
	s.score = 0
	s.spawnTimer = 0
	s.ticks = 0
	s.difficulty.Reset()
	s.field.Clear()
	s.player.Reset()
	s.clock.Reset(now)
	s.state = StateRunning
}

// Frame is the per-frame entry point: it turns the host timestamp into a
// bounded dt and runs one tick. It returns whether the driver should keep
// requesting frames, which stops once the run is over.
func (s *Simulation) Frame(now float64) bool {
	if s.state != StateRunning {
		return false
	}
	s.Tick(s.clock.Step(now))
	return s.state == StateRunning
}

// Tick advances a running simulation by dt seconds. The order is fixed:
// physics, movement and reaping, collision, difficulty, spawning, score.
// An obstacle spawned in a tick is therefore never tested in that tick.
func (s *Simulation) Tick(dt float64) TickResult {
	var res TickResult
	if s.state != StateRunning {
		return res
	}
	s.ticks++

	s.player.Update(dt)

	s.field.Advance(dt, s.difficulty.Speed())
	res.Reaped = s.field.Reap(s.field.LeftBound())

	if Any(s.PlayerBox(), s.field.Boxes()) {
		s.state = StateGameOver
		res.Collided = true
		return res
	}

	s.difficulty.Update(dt, s.score)

	s.spawnTimer += dt * 1000
	if s.spawnTimer >= s.difficulty.SpawnInterval() {
		s.field.Spawn()
		s.spawnTimer = 0
		res.Spawned = true
	}

	s.score += dt * s.cfg.Scoring.PointsPerSecond
	return res
}

// PlayerBox returns the player's hitbox in field coordinates.
func (s *Simulation) PlayerBox() core.Box {
	return core.NewBox(s.cfg.Player.X, s.player.Position(), s.cfg.Player.Width, s.cfg.Player.Height)
}

// State returns the lifecycle state.
func (s *Simulation) State() State { return s.state }

// Score returns the raw accumulated score.
func (s *Simulation) Score() float64 { return s.score }

// Ticks returns the number of ticks run since the last start.
func (s *Simulation) Ticks() uint64 { return s.ticks }

// Player exposes the player body for inspection.
func (s *Simulation) Player() *Player { return s.player }

// Field exposes the obstacle field for inspection.
func (s *Simulation) Field() *ObstacleField { return s.field }

// Difficulty exposes the difficulty controller for inspection.
func (s *Simulation) Difficulty() *Difficulty { return s.difficulty }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.RunnerConfig { return s.cfg }

// FormatScore floors a score and zero-pads it to the given number of digits.
func FormatScore(score float64, digits int) string {
	return fmt.Sprintf("%0*d", digits, int(math.Floor(score)))
}
