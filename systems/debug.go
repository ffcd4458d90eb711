package systems

import (
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/yohamta/donburi"
)

// UpdateDebug flips the debug overlay on the toggle key.
func UpdateDebug(w donburi.World) {
	input, ok := first(w, components.Input)
	if !ok {
		return
	}
	debug, ok := first(w, components.Debug)
	if !ok {
		return
	}
	if input.JustPressed(cfg.ActionToggleDebug) {
		debug.Overlay = !debug.Overlay
	}
}
