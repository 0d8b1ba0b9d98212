// Package runner adapts the endless runner simulation to the platform's
// Game contract: it maps input actions to intents, turns frame timestamps
// into the simulation clock and rasterizes the pixel field onto a cell screen.
package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
)

// GameID is the identifier used for score storage.
const GameID = "runner"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// RunSummary describes a finished run.
type RunSummary struct {
	Score    int           // Final floored score
	Speed    float64       // Scroll speed at the collision, px/s
	Duration time.Duration // From the start of the run to the collision
}

var _ core.Game = (*Game)(nil)

// Game implements core.Game on top of a sim.Simulation.
type Game struct {
	sim       *sim.Simulation
	cfg       config.RunnerConfig
	source    string // Where cfg was loaded from
	runtime   core.RuntimeConfig
	now       float64 // Last frame timestamp, ms
	startedAt float64 // Timestamp the current run started, ms
	lastRun   RunSummary
	highScore int
}

// New creates a new runner game instance. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Endless Runner"
}

// Reset loads the config and builds an idle simulation.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}

	cfg, source, err := config.LoadRunner(configPath)
	if err != nil {
		cfg, source = config.DefaultRunnerConfig(), config.SourceBuiltin
	}
	g.cfg = cfg
	g.source = source

	g.sim = sim.New(cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.now = 0
	g.startedAt = 0
	g.lastRun = RunSummary{}
}

// Step applies the frame's actions and advances the simulation by the time
// elapsed since the previous frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := g.timestamp(in)

	switch {
	case in.Has(core.ActionRestart):
		g.sim.Apply(sim.IntentRestart, now)
	case in.Has(core.ActionJump):
		g.sim.Apply(sim.IntentJump, now)
	}

	before := g.sim.State()
	if before == sim.StateRunning && g.sim.Ticks() == 0 {
		g.startedAt = now
	}

	g.sim.Frame(now)
	ended := before == sim.StateRunning && g.sim.State() == sim.StateGameOver

	if ended {
		snap := g.sim.Snapshot()
		g.lastRun = RunSummary{
			Score:    snap.FinalScore,
			Speed:    snap.Speed,
			Duration: time.Duration((now - g.startedAt) * float64(time.Millisecond)),
		}
		g.highScore = max(g.highScore, snap.FinalScore)
	}

	return core.StepResult{State: g.State(), Ended: ended}
}

// timestamp returns the frame time in ms. Without a wall clock the game
// advances by one nominal tick.
func (g *Game) timestamp(in core.InputFrame) float64 {
	if in.Now.IsZero() {
		g.now += 1000 / float64(g.runtime.TickRate)
	} else {
		g.now = float64(in.Now.UnixNano()) / 1e6
	}
	return g.now
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.sim.Snapshot()
	return core.GameState{
		Phase:    phaseOf(snap.State),
		Score:    snap.Score,
		GameOver: snap.GameOver,
	}
}

func phaseOf(s sim.State) core.Phase {
	switch s {
	case sim.StateRunning:
		return core.PhaseRunning
	case sim.StateGameOver:
		return core.PhaseGameOver
	default:
		return core.PhaseIdle
	}
}

// Snapshot returns the simulation state in field pixels, for frontends that
// draw at pixel resolution.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}

// LastRun returns the summary of the most recently finished run.
func (g *Game) LastRun() RunSummary {
	return g.lastRun
}

// SetHighScore seeds the best score shown on the HUD, usually from storage.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// HighScore returns the best score seen so far.
func (g *Game) HighScore() int {
	return g.highScore
}

// Config returns the loaded config and where it came from.
func (g *Game) Config() (config.RunnerConfig, string) {
	return g.cfg, g.source
}

// FormatScore pads a score with the configured number of digits.
func (g *Game) FormatScore(score int) string {
	return sim.FormatScore(float64(score), g.cfg.Scoring.Digits)
}
