package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ControlMode names the input source currently driving an entity.
type ControlMode int

const (
	ControlNone ControlMode = iota
	ControlKeyboard
	ControlMouse
)

func (m ControlMode) String() string {
	switch m {
	case ControlNone:
		return "none"
	case ControlKeyboard:
		return "keyboard"
	case ControlMouse:
		return "mouse"
	}
	return "unknown"
}

type ControlData struct {
	Mode ControlMode
	// Anchor is where the drag started, in window pixels. Only meaningful
	// in ControlMouse.
	Anchor math.Vec2
}

var Control = donburi.NewComponentType[ControlData]()
