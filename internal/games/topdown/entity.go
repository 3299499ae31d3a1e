package topdown

import (
	"image"
	"math"

	"github.com/vovakirdan/tui-topdown/internal/core"
	"github.com/vovakirdan/tui-topdown/internal/sprite"
)

// Kind tags an Entity with the behaviour that computes its movement.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Drawable is anything the session renders each frame.
type Drawable interface {
	Draw(dst core.Surface)
}

// Entity is a positioned, rotatable, animated game object.
//
// The logical position is the center; the bounding rect always has the size
// of the active (rotated) sprite and is centered on it, so rotating changes
// the rect's extents but never moves the entity.
type Entity struct {
	kind   Kind
	center core.Vec2
	rect   core.Rect
	angle  float64 // Facing in degrees, atan2 convention in screen space
	speed  float64
	anim   *sprite.Animation
	active image.Image // Current frame rotated by angle
	moved  bool
}

var _ Drawable = (*Entity)(nil)

// NewEntity creates an entity whose unrotated sprite has its top-left corner
// at (x, y).
func NewEntity(kind Kind, x, y, speed float64, frames []image.Image, animationSpeed float64) *Entity {
	e := &Entity{
		kind:  kind,
		speed: speed,
		anim:  sprite.NewAnimation(frames, animationSpeed),
	}
	b := frames[0].Bounds()
	e.center = core.V(x+float64(b.Dx())/2, y+float64(b.Dy())/2)
	e.refresh()
	return e
}

// Kind returns the behaviour tag.
func (e *Entity) Kind() Kind { return e.kind }

// Center returns the logical position.
func (e *Entity) Center() core.Vec2 { return e.center }

// Rect returns the current bounding rectangle.
func (e *Entity) Rect() core.Rect { return e.rect }

// Angle returns the facing angle in degrees.
func (e *Entity) Angle() float64 { return e.angle }

// Speed returns the movement speed in pixels per tick.
func (e *Entity) Speed() float64 { return e.speed }

// Moved reports whether the entity moved during the last tick.
func (e *Entity) Moved() bool { return e.moved }

// Frame returns the active animation frame index.
func (e *Entity) Frame() int { return e.anim.Index() }

// Sprite returns the image drawn for the entity.
func (e *Entity) Sprite() image.Image { return e.active }

// SetCenter moves the entity so its center is c.
func (e *Entity) SetCenter(c core.Vec2) {
	e.center = c
	e.rect = core.RectCentered(c, e.rect.W, e.rect.H)
}

// translate displaces the entity by d.
func (e *Entity) translate(d core.Vec2) {
	e.SetCenter(e.center.Add(d))
}

// UpdateAnimation advances the animation from the moved flag and refreshes
// the active sprite.
func (e *Entity) UpdateAnimation() {
	e.anim.Update(e.moved)
	e.refresh()
}

// FacePoint turns the entity toward target. A target on the entity's own
// center leaves the angle unchanged.
func (e *Entity) FacePoint(target core.Vec2) {
	d := target.Sub(e.center)
	if d.X == 0 && d.Y == 0 {
		return
	}
	e.angle = math.Atan2(d.Y, d.X) * 180 / math.Pi
	e.refresh()
}

// refresh rotates the active frame to the current angle and re-centers the
// rect on the logical center.
func (e *Entity) refresh() {
	frame := e.anim.Frame()
	if e.angle == 0 {
		e.active = frame
	} else {
		e.active = sprite.Rotate(frame, e.angle)
	}
	b := e.active.Bounds()
	e.rect = core.RectCentered(e.center, float64(b.Dx()), float64(b.Dy()))
}

// Draw blits the active sprite at the rect position.
func (e *Entity) Draw(dst core.Surface) {
	dst.Blit(e.active, int(math.Round(e.rect.X)), int(math.Round(e.rect.Y)))
}
