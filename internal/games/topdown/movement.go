package topdown

import "github.com/vovakirdan/tui-topdown/internal/core"

// Keys is the set of held direction keys for one tick.
type Keys struct {
	Left, Right, Up, Down bool
}

// Any reports whether at least one direction is held.
func (k Keys) Any() bool {
	return k.Left || k.Right || k.Up || k.Down
}

// KeysFromInput extracts the held directions from an input frame.
func KeysFromInput(in core.InputFrame) Keys {
	return Keys{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
	}
}

// MoveInput carries what either behaviour needs to compute a displacement.
// Players read Keys, enemies read Target.
type MoveInput struct {
	Keys   Keys
	Target core.Vec2
}

// displacement computes this tick's movement for the entity's kind and
// whether it counts as moving.
func (e *Entity) displacement(in MoveInput) (core.Vec2, bool) {
	switch e.kind {
	case KindPlayer:
		var d core.Vec2
		if in.Keys.Left {
			d.X -= e.speed
		}
		if in.Keys.Right {
			d.X += e.speed
		}
		if in.Keys.Up {
			d.Y -= e.speed
		}
		if in.Keys.Down {
			d.Y += e.speed
		}
		// Diagonals stay unnormalized
		return d, in.Keys.Any()
	case KindEnemy:
		v := in.Target.Sub(e.center)
		if v.Len() == 0 {
			return core.Vec2{}, false
		}
		return v.Normalize().Scale(e.speed), true
	default:
		return core.Vec2{}, false
	}
}

// Move applies one tick of movement for the entity's kind and advances its
// animation. Enemies also turn toward their target.
func (e *Entity) Move(in MoveInput) {
	d, moved := e.displacement(in)
	e.moved = moved
	if moved {
		e.translate(d)
	}
	e.UpdateAnimation()
	if e.kind == KindEnemy {
		e.FacePoint(in.Target)
	}
}

// MoveKeys moves a player by the held direction keys.
func (e *Entity) MoveKeys(keys Keys) {
	e.Move(MoveInput{Keys: keys})
}

// MoveTowards moves an enemy one step toward target and faces it.
// A step may overshoot when the target is closer than the speed.
func (e *Entity) MoveTowards(target core.Vec2) {
	e.Move(MoveInput{Target: target})
}

// FaceCursor turns the entity toward the pointer.
func (e *Entity) FaceCursor(pointer core.Vec2) {
	e.FacePoint(pointer)
}
