// Package gui is the desktop and browser frontend for the runner, built on
// Ebitengine. It draws the field at pixel resolution and maps keys, mouse
// clicks and touches to game actions.
package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Palette
var (
	colorSky      = color.RGBA{R: 247, G: 247, B: 247, A: 255}
	colorGround   = color.RGBA{R: 83, G: 83, B: 83, A: 255}
	colorPlayer   = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	colorHit      = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	colorObstacle = color.RGBA{R: 46, G: 125, B: 50, A: 255}
	colorOverlay  = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)

// Scores is the part of the score store the app needs. *storage.Store
// satisfies it.
type Scores interface {
	SaveRun(r storage.Run) (int64, error)
	HighScore(gameID string) (int, error)
}

// App implements ebiten.Game around a runner.Game.
type App struct {
	game   *runner.Game
	store  Scores
	logger *log.Logger
	field  core.Box
}

// NewApp creates an idle game. store may be nil to disable score saving.
func NewApp(store Scores, cfg core.RuntimeConfig, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game := runner.New()
	game.Reset(cfg)

	if store != nil {
		high, err := store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		game.SetHighScore(high)
	}

	return &App{
		game:   game,
		store:  store,
		logger: logger,
		field:  game.Snapshot().Field,
	}
}

// Update polls input and advances the game by one frame.
func (a *App) Update() error {
	in := pollInput()
	if in.quit {
		return ebiten.Termination
	}

	res := a.game.Step(in.frame(time.Now()))
	if res.Ended {
		a.saveRun()
	}
	return nil
}

// saveRun persists the run that just ended.
func (a *App) saveRun() {
	last := a.game.LastRun()
	a.logger.Info("run ended", "score", last.Score, "duration", last.Duration.Round(time.Millisecond))

	if a.store == nil || last.Score <= 0 {
		return
	}
	_, err := a.store.SaveRun(storage.Run{
		GameID:   a.game.ID(),
		Player:   storage.LocalPlayer,
		Score:    last.Score,
		Speed:    last.Speed,
		Duration: last.Duration,
	})
	if err != nil {
		a.logger.Error("could not save run", "error", err)
	}
}

// Draw renders the snapshot with the field's y axis flipped onto the screen.
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()
	screen.Fill(colorSky)

	w, h := a.Layout(0, 0)
	vector.DrawFilledRect(screen, 0, float32(a.field.H), float32(w), 2, colorGround, false)

	for _, o := range snap.Obstacles {
		fillBox(screen, a.field, o.Box, colorObstacle)
	}

	player := colorPlayer
	if snap.GameOver {
		player = colorHit
	}
	fillBox(screen, a.field, snap.Player.Box, player)

	hud := snap.FormattedScore
	if hi := a.game.HighScore(); hi > 0 {
		hud = fmt.Sprintf("HI %s  %s", a.game.FormatScore(hi), hud)
	}
	ebitenutil.DebugPrintAt(screen, hud, w-len(hud)*6-12, 8)

	switch snap.State {
	case sim.StateIdle:
		drawMessage(screen, w, h, a.game.Title(), "Press Space or click to start")
	case sim.StateGameOver:
		drawMessage(screen, w, h, "GAME OVER", "Score "+snap.FormattedScore+"  -  Space or R to restart")
	}
}

// Layout returns the logical screen: the whole field plus a strip of
// ground below it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.field.W), int(a.field.H) + groundStrip
}

// groundStrip is the height in pixels drawn below the ground line.
const groundStrip = 24

// fillBox draws a field box on screen.
func fillBox(screen *ebiten.Image, field, b core.Box, c color.Color) {
	x, y, w, h := toScreen(field, b)
	vector.DrawFilledRect(screen, x, y, w, h, c, false)
}

// toScreen flips a y-up field box into y-down screen pixels.
func toScreen(field, b core.Box) (x, y, w, h float32) {
	return float32(b.X), float32(field.H - b.Top()), float32(b.W), float32(b.H)
}

// drawMessage draws a two-line banner in the middle of the screen.
func drawMessage(screen *ebiten.Image, w, h int, title, subtitle string) {
	const lineH = 16
	boxW := max(len(title), len(subtitle))*6 + 24
	boxX := (w - boxW) / 2
	boxY := h/2 - lineH*2

	vector.DrawFilledRect(screen, float32(boxX), float32(boxY), float32(boxW), lineH*3, colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, title, (w-len(title)*6)/2, boxY+4)
	ebitenutil.DebugPrintAt(screen, subtitle, (w-len(subtitle)*6)/2, boxY+4+lineH+4)
}

// Run opens a window and plays until it is closed or Escape is pressed.
func Run(app *App, scale int) error {
	w, h := app.Layout(0, 0)
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle(app.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(app)
}
