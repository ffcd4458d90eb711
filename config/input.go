package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds all input mappings. Keys are named the way ebiten
// names them ("A", "ArrowLeft", "F3"); the input poller resolves them.
type InputConfig struct {
	Bindings map[ActionID][]string
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID][]string{
			ActionMoveLeft:    {"A", "ArrowLeft"},
			ActionMoveRight:   {"D", "ArrowRight"},
			ActionMoveUp:      {"W", "ArrowUp"},
			ActionMoveDown:    {"S", "ArrowDown"},
			ActionToggleDebug: {"F3"},
		},
	}
}
