package components

import (
	cfg "github.com/automoto/homestead/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputData stores the current and previous frame's pressed state for all
// actions and the pointer. JustPressed/JustReleased are computed on demand
// by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	PointerPressed  bool
	PointerPrevious bool
	// PointerKnown is false when the host has no cursor position this frame
	// (touch released, cursor outside the window).
	PointerKnown bool
	Pointer      math.Vec2 // window pixels, y down
}

// Pressed reports whether the action is held this frame.
func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

// JustPressed reports whether the action went down this frame.
func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

// PointerJustPressed reports whether the pointer button went down this frame.
func (d *InputData) PointerJustPressed() bool {
	return d.PointerPressed && !d.PointerPrevious
}

// Advance rolls the current frame into the previous one and clears the
// current state, ready for polling.
func (d *InputData) Advance() {
	d.Previous = d.Current
	d.Current = [cfg.ActionCount]bool{}
	d.PointerPrevious = d.PointerPressed
	d.PointerPressed = false
}

var Input = donburi.NewComponentType[InputData]()
