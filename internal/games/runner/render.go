package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
)

// Visual characters for rendering
const (
	BodyChar     = '█'
	HeadChar     = '◆'
	Leg1Char     = '╱'
	Leg2Char     = '╲'
	ObstacleChar = '▓'
	GroundChar   = '═'
)

// viewport maps field pixels (y up, ground at 0) to screen cells (y down).
// Row 0 holds the HUD and the ground line sits one row above the bottom.
type viewport struct {
	groundY int
	sx, sy  float64 // cells per pixel
}

func newViewport(dst *core.Screen, field core.Box) viewport {
	groundY := dst.Height() - 2
	return viewport{
		groundY: groundY,
		sx:      float64(dst.Width()) / field.W,
		sy:      float64(groundY-1) / field.H,
	}
}

// cells returns the cell rectangle covered by a field box, at least one
// cell in each direction.
func (v viewport) cells(b core.Box) core.Rect {
	left := int(math.Floor(b.Left() * v.sx))
	right := core.Max(left+1, int(math.Ceil(b.Right()*v.sx)))

	bottom := int(math.Floor(b.Bottom() * v.sy))
	top := core.Max(bottom+1, int(math.Ceil(b.Top()*v.sy)))

	// Cell row just above the ground is field row 0.
	y := v.groundY - top
	return core.NewRect(left, y, right-left, top-bottom)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 8 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	snap := g.sim.Snapshot()
	vp := newViewport(dst, snap.Field)

	dst.DrawHLine(0, vp.groundY, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range snap.Obstacles {
		dst.DrawRect(vp.cells(o.Box), ObstacleChar, core.ColorGreen)
	}

	g.drawPlayer(dst, vp, snap)
	g.drawHUD(dst, snap)

	switch snap.State {
	case sim.StateIdle:
		drawCenteredMessage(dst, g.Title(), "Press Space to start")
	case sim.StateGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %s  |  Space or R to restart", snap.FormattedScore))
	}
}

// drawPlayer renders the runner sprite inside its hitbox cells.
func (g *Game) drawPlayer(dst *core.Screen, vp viewport, snap sim.Snapshot) {
	r := vp.cells(snap.Player.Box)
	color := core.ColorBrightWhite
	if snap.GameOver {
		color = core.ColorRed
	}

	dst.DrawRect(core.NewRect(r.X, r.Y, r.W, r.H-1), BodyChar, color)
	dst.SetColored(r.Right()-1, r.Y, HeadChar, color)

	// Legs alternate every few ticks while running on the ground
	legs := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		ch := Leg1Char
		switch {
		case !snap.Player.Grounded:
			if x != r.X {
				ch = ' '
			}
		case (x-r.X+int(snap.Ticks/6))%2 == 1:
			ch = Leg2Char
		}
		dst.SetColored(x, legs, ch, color)
	}
}

// drawHUD renders the high score and the current score in the top right.
func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	score := snap.FormattedScore
	dst.DrawTextColored(dst.Width()-len(score)-1, 0, score, core.ColorBrightWhite)

	if g.highScore > 0 {
		hi := "HI " + g.FormatScore(g.highScore)
		dst.DrawTextColored(dst.Width()-len(score)-len(hi)-3, 0, hi, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
