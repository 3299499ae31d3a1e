package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionFire)
	f.SetPointer(V(400, 300))

	if !f.Has(ActionLeft) || !f.Has(ActionFire) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionFire) {
		t.Error("Clear should remove all actions")
	}
	if !f.HasPointer || f.Pointer != V(400, 300) {
		t.Error("Clear should keep the pointer position")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.SetPointer(V(1, 2))

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionUp) {
		t.Error("clone should be independent of the original")
	}
	if c.Pointer != V(1, 2) || !c.HasPointer {
		t.Error("clone should copy the pointer")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(99).String())
	}
}
