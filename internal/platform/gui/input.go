package gui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-runner/internal/core"
)

var (
	jumpKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// inputState is the device input of one frame, before mapping to actions.
type inputState struct {
	jump    bool
	restart bool
	quit    bool
}

// pollInput reads the keys, buttons and touches pressed this frame.
func pollInput() inputState {
	return inputState{
		jump: anyJustPressed(jumpKeys) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			len(inpututil.AppendJustPressedTouchIDs(nil)) > 0,
		restart: anyJustPressed(restartKeys),
		quit:    anyJustPressed(quitKeys),
	}
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// frame maps the device input to an input frame stamped with now.
func (s inputState) frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	f.Now = now
	if s.jump {
		f.Set(core.ActionJump)
	}
	if s.restart {
		f.Set(core.ActionRestart)
	}
	return f
}
