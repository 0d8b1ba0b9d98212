package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func newTestPlayer() *Player {
	return NewPlayer(config.DefaultRunnerConfig().Physics)
}

func TestPlayerStartsGrounded(t *testing.T) {
	p := newTestPlayer()

	if !p.Grounded() || p.Position() != 0 || p.Velocity() != 0 {
		t.Errorf("new player = (pos %v, vel %v, grounded %v), expected resting on ground",
			p.Position(), p.Velocity(), p.Grounded())
	}
}

func TestPlayerJump(t *testing.T) {
	p := newTestPlayer()

	if !p.Jump() {
		t.Fatal("Jump() from the ground should succeed")
	}
	if p.Velocity() != 820 {
		t.Errorf("velocity after jump = %v, expected 820", p.Velocity())
	}
	if p.Grounded() {
		t.Error("player should be airborne after jump")
	}
}

func TestPlayerNoDoubleJump(t *testing.T) {
	p := newTestPlayer()
	p.Jump()
	p.Update(0.016)

	before := p.Velocity()
	if p.Jump() {
		t.Error("Jump() while airborne should be ignored")
	}
	if p.Velocity() != before {
		t.Errorf("velocity changed by airborne jump: %v -> %v", before, p.Velocity())
	}
}

func TestPlayerAsymmetricGravity(t *testing.T) {
	const dt = 0.01

	// Rising: plain gravity
	p := newTestPlayer()
	p.Jump()
	p.Update(dt)
	if expected := 820 - 2200*dt; math.Abs(p.Velocity()-expected) > 1e-9 {
		t.Errorf("rising velocity = %v, expected %v", p.Velocity(), expected)
	}

	// Falling: gravity times 2.6
	p = newTestPlayer()
	p.grounded = false
	p.position = 100
	p.velocity = -10
	p.Update(dt)
	if expected := -10 - 5720*dt; math.Abs(p.Velocity()-expected) > 1e-9 {
		t.Errorf("falling velocity = %v, expected %v", p.Velocity(), expected)
	}
}

func TestPlayerStaysGroundedWithoutJump(t *testing.T) {
	p := newTestPlayer()

	for i := 0; i < 1000; i++ {
		p.Update(0.032)
		if p.Position() != 0 || !p.Grounded() {
			t.Fatalf("tick %d: player left the ground without jumping (pos %v)", i, p.Position())
		}
	}
}

func TestPlayerJumpLands(t *testing.T) {
	for _, dt := range []float64{0.001, 0.016, 0.032} {
		p := newTestPlayer()
		p.Jump()

		peak := 0.0
		landed := false
		for i := 0; i < 10000; i++ {
			p.Update(dt)
			if p.Position() < 0 {
				t.Fatalf("dt=%v: position went negative: %v", dt, p.Position())
			}
			peak = math.Max(peak, p.Position())
			if p.Grounded() {
				landed = true
				break
			}
		}

		if !landed {
			t.Fatalf("dt=%v: player never landed", dt)
		}
		if p.Position() != 0 || p.Velocity() > 0 {
			t.Errorf("dt=%v: landed at pos %v vel %v", dt, p.Position(), p.Velocity())
		}
		// Apex of v²/2g is about 152.8 px; coarse steps land short of it.
		if peak < 130 || peak > 155 {
			t.Errorf("dt=%v: jump peak = %v, expected about 152.8", dt, peak)
		}
	}
}

func TestPlayerFallIsFasterThanRise(t *testing.T) {
	const dt = 0.001
	p := newTestPlayer()
	p.Jump()

	rise, fall := 0, 0
	for !p.Grounded() || rise == 0 {
		p.Update(dt)
		if p.Velocity() >= 0 && !p.Grounded() {
			rise++
		} else {
			fall++
		}
	}

	if fall >= rise {
		t.Errorf("fall took %d ticks, rise %d; descent should be quicker", fall, rise)
	}
}
