package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame

	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Now = time.Unix(10, 0)
	if !f.Has(ActionJump) {
		t.Error("Set(ActionJump) not recorded")
	}
	if f.Has(ActionRestart) {
		t.Error("unexpected ActionRestart")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should drop actions")
	}
	if !f.Now.IsZero() {
		t.Error("Clear should drop the timestamp")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionJump:    "Jump",
		ActionRestart: "Restart",
		ActionBack:    "Back",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, expected := range tests {
		if a.String() != expected {
			t.Errorf("Action(%d).String() = %q, expected %q", a, a.String(), expected)
		}
	}
}
