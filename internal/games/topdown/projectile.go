package topdown

import (
	"errors"

	"github.com/vovakirdan/tui-topdown/internal/core"
)

// ErrDegenerateShot is returned when a shot's target equals its origin, so
// no direction exists.
var ErrDegenerateShot = errors.New("topdown: shot target equals origin")

// Projectile travels in a straight line at constant velocity.
type Projectile struct {
	pos    core.Vec2
	vel    core.Vec2
	radius float64
	color  core.Color
}

var _ Drawable = (*Projectile)(nil)

// NewProjectile creates a projectile at origin heading toward target.
func NewProjectile(origin, target core.Vec2, speed, radius float64, color core.Color) (*Projectile, error) {
	dir := target.Sub(origin)
	if dir.Len() == 0 {
		return nil, ErrDegenerateShot
	}
	return &Projectile{
		pos:    origin,
		vel:    dir.Normalize().Scale(speed),
		radius: radius,
		color:  color,
	}, nil
}

// Advance moves the projectile by one tick of velocity.
func (p *Projectile) Advance() {
	p.pos = p.pos.Add(p.vel)
}

// CollidesWith reports whether the projectile's point lies inside the
// entity's rect.
func (p *Projectile) CollidesWith(e *Entity) bool {
	return e.Rect().Contains(p.pos)
}

// Position returns the current position.
func (p *Projectile) Position() core.Vec2 { return p.pos }

// Velocity returns the per-tick velocity.
func (p *Projectile) Velocity() core.Vec2 { return p.vel }

// Radius returns the drawn radius.
func (p *Projectile) Radius() float64 { return p.radius }

// Draw renders the projectile as a filled circle.
func (p *Projectile) Draw(dst core.Surface) {
	dst.FillCircle(p.pos, p.radius, p.color)
}
