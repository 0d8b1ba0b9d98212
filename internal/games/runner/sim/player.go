package sim

import "github.com/vovakirdan/tui-runner/internal/config"

// Player is the vertical-only body of the runner.
// Position is the height above the ground (never negative) and velocity is
// positive upward. grounded holds exactly when position and velocity are 0.
type Player struct {
	cfg      config.PhysicsConfig
	position float64
	velocity float64
	grounded bool
}

// NewPlayer creates a grounded player.
func NewPlayer(cfg config.PhysicsConfig) *Player {
	p := &Player{cfg: cfg}
	p.Reset()
	return p
}

// Reset puts the player back on the ground at rest.
func (p *Player) Reset() {
	p.position = 0
	p.velocity = 0
	p.grounded = true
}

// Jump launches a grounded player. It returns false and changes nothing
// while the player is airborne, so there is no double jump.
func (p *Player) Jump() bool {
	if !p.grounded {
		return false
	}
	p.velocity = p.cfg.JumpVelocity
	p.grounded = false
	return true
}

// Update integrates one tick of gravity. Falling uses a stronger gravity
// than rising, which gives a quick drop after a floaty ascent.
func (p *Player) Update(dt float64) {
	g := p.cfg.Gravity
	if p.velocity < 0 {
		g *= p.cfg.FallMultiplier
	}
	p.velocity -= g * dt
	p.position += p.velocity * dt

	if p.position <= 0 {
		p.position = 0
		p.velocity = 0
		p.grounded = true
	}
}

// Position returns the height above the ground.
func (p *Player) Position() float64 { return p.position }

// Velocity returns the vertical velocity, positive upward.
func (p *Player) Velocity() float64 { return p.velocity }

// Grounded reports whether the player is resting on the ground.
func (p *Player) Grounded() bool { return p.grounded }
