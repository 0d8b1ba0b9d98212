package runner

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	// Keep user and working-directory configs out of the test.
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetConfigPath("")

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func jump() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

// runToGameOver steps without jumping until the run ends.
func runToGameOver(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if res := g.Step(core.NewInputFrame()); res.Ended {
			return res
		}
	}
	t.Fatal("run never ended")
	return core.StepResult{}
}

func TestGameStartsIdle(t *testing.T) {
	g := newTestGame(t, 1)

	for i := 0; i < 30; i++ {
		res := g.Step(core.NewInputFrame())
		if res.State.Phase != core.PhaseIdle || res.State.Score != 0 {
			t.Fatalf("idle game advanced: %+v", res.State)
		}
	}

	_, source := g.Config()
	if source != "embedded" {
		t.Errorf("config source = %q, expected embedded", source)
	}
}

func TestJumpStartsRun(t *testing.T) {
	g := newTestGame(t, 1)

	res := g.Step(jump())
	if res.State.Phase != core.PhaseRunning {
		t.Fatalf("Phase = %v, expected Running", res.State.Phase)
	}

	// One second at the nominal tick rate, minus the starting frame.
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	if s := g.State().Score; s < 95 || s > 101 {
		t.Errorf("Score after ~1s = %d, expected about 100", s)
	}
}

func TestWallClockTimestamps(t *testing.T) {
	g := newTestGame(t, 1)
	base := time.Unix(1700000000, 0)

	in := jump()
	in.Now = base
	g.Step(in)

	for i := 1; i <= 50; i++ {
		in := core.NewInputFrame()
		in.Now = base.Add(time.Duration(i) * 20 * time.Millisecond)
		g.Step(in)
	}
	// 50 frames of 20ms
	if s := g.State().Score; s != 99 && s != 100 {
		t.Errorf("Score = %d, expected 100 after one second", s)
	}

	// A long stall is capped to a single 32ms step.
	in = core.NewInputFrame()
	in.Now = base.Add(time.Minute)
	g.Step(in)
	if s := g.State().Score; s < 102 || s > 104 {
		t.Errorf("Score after stall = %d, expected about 103", s)
	}
}

func TestEndedReportedOnce(t *testing.T) {
	g := newTestGame(t, 7)
	g.Step(jump())

	res := runToGameOver(t, g)
	if !res.State.GameOver || res.State.Phase != core.PhaseGameOver {
		t.Fatalf("unexpected state at end: %+v", res.State)
	}
	if g.HighScore() != res.State.Score {
		t.Errorf("HighScore() = %d, expected final score %d", g.HighScore(), res.State.Score)
	}

	last := g.LastRun()
	if last.Score != res.State.Score || last.Speed <= 240 {
		t.Errorf("LastRun() = %+v", last)
	}
	// Score grows 100 per second of run time.
	if secs := last.Duration.Seconds(); secs < float64(last.Score)/100-0.1 || secs > float64(last.Score)/100+0.1 {
		t.Errorf("LastRun().Duration = %v for score %d", last.Duration, last.Score)
	}

	for i := 0; i < 100; i++ {
		after := g.Step(core.NewInputFrame())
		if after.Ended {
			t.Fatal("Ended reported more than once")
		}
		if after.State.Score != res.State.Score {
			t.Fatal("score changed after game over")
		}
	}
}

func TestRestartAction(t *testing.T) {
	g := newTestGame(t, 7)
	g.Step(jump())
	runToGameOver(t, g)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if res.State.Phase != core.PhaseRunning || res.State.Score != 0 {
		t.Errorf("restart gave %+v, expected a fresh run", res.State)
	}
	if g.Snapshot().Speed != 240 {
		t.Errorf("Speed = %v, expected 240", g.Snapshot().Speed)
	}
}

func TestHighScoreKeepsBest(t *testing.T) {
	g := newTestGame(t, 7)
	g.SetHighScore(1000000)

	g.Step(jump())
	runToGameOver(t, g)

	if g.HighScore() != 1000000 {
		t.Errorf("HighScore() = %d, a lower run must not replace it", g.HighScore())
	}
}

func TestGameDeterminism(t *testing.T) {
	play := func() core.GameState {
		g := newTestGame(t, 12345)
		g.Step(jump())
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%40 == 0 {
				in.Set(core.ActionJump)
			}
			if g.Step(in).Ended {
				break
			}
		}
		return g.State()
	}

	if a, b := play(), play(); a != b {
		t.Errorf("same seed and inputs diverged: %+v vs %+v", a, b)
	}
}

func TestRenderScreens(t *testing.T) {
	g := newTestGame(t, 7)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Press Space to start") {
		t.Error("idle screen should prompt to start")
	}
	if !strings.ContainsRune(out, GroundChar) {
		t.Error("ground line missing")
	}

	g.Step(jump())
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "00000") || strings.Contains(out, "Press Space") {
		t.Error("running screen should show the score and no prompt")
	}

	runToGameOver(t, g)
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over message missing")
	}
	if !strings.Contains(out, "HI ") {
		t.Error("high score missing from HUD")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(10, 4)

	g.Render(screen)
	if !strings.HasPrefix(screen.String(), "Terminal") {
		t.Error("expected a size warning")
	}
}

func TestViewportCells(t *testing.T) {
	screen := core.NewScreen(80, 24)
	vp := newViewport(screen, core.NewBox(0, 0, 800, 240))

	player := vp.cells(core.NewBox(48, 0, 40, 48))
	if player.X != 4 {
		t.Errorf("player X = %d, expected 4", player.X)
	}
	if player.Bottom() != vp.groundY {
		t.Errorf("player bottom = %d, expected to rest on ground row %d", player.Bottom(), vp.groundY)
	}

	// Tiny boxes still take a cell.
	dot := vp.cells(core.NewBox(100, 0, 1, 1))
	if dot.W != 1 || dot.H != 1 {
		t.Errorf("dot = %+v, expected a single cell", dot)
	}

	// Airborne boxes move up the screen.
	high := vp.cells(core.NewBox(48, 100, 40, 48))
	if high.Y >= player.Y {
		t.Errorf("airborne Y = %d should be above grounded Y = %d", high.Y, player.Y)
	}
}
