package systems

import (
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/shared/gamemath"
	"github.com/automoto/homestead/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// UpdateControl turns this frame's input into the player's velocity and
// facing. Keyboard wins over the pointer; a pointer drag only starts on a
// fresh press while the keyboard is idle.
// Must run AFTER input polling and BEFORE UpdateMovement.
func UpdateControl(w donburi.World) {
	input, ok := first(w, components.Input)
	if !ok {
		return
	}
	window, hasWindow := first(w, components.Window)

	tags.Player.Each(w, func(e *donburi.Entry) {
		ctrl := components.Control.Get(e)
		vel := components.Velocity.Get(e)
		cycle := components.Animation.Get(e).Cycle

		dir := gamemath.KeyboardDirection(gamemath.DirectionKeys{
			Left:  input.Pressed(cfg.ActionMoveLeft),
			Right: input.Pressed(cfg.ActionMoveRight),
			Up:    input.Pressed(cfg.ActionMoveUp),
			Down:  input.Pressed(cfg.ActionMoveDown),
		})
		if !gamemath.IsZero(dir) {
			ctrl.Mode = components.ControlKeyboard
			vel.Vec2 = gamemath.Scale(dir, cfg.Player.WalkingSpeed)
			cycle.Facing = gamemath.FacingFor(dir, cycle.Facing)
			return
		}
		if ctrl.Mode == components.ControlKeyboard {
			stop(ctrl, vel)
		}

		if input.PointerJustPressed() && input.PointerKnown {
			ctrl.Mode = components.ControlMouse
			ctrl.Anchor = input.Pointer
		}
		if ctrl.Mode != components.ControlMouse {
			return
		}
		if !input.PointerPressed {
			stop(ctrl, vel)
			return
		}
		if !input.PointerKnown || !hasWindow {
			return // keep last frame's velocity
		}

		dir = gamemath.PointerDirection(ctrl.Anchor, input.Pointer, window.Width, window.Height, cfg.Player.MouseSensitivity)
		vel.Vec2 = gamemath.Scale(dir, cfg.Player.WalkingSpeed)
		cycle.Facing = gamemath.FacingFor(dir, cycle.Facing)
	})
}

func stop(ctrl *components.ControlData, vel *components.VelocityData) {
	ctrl.Mode = components.ControlNone
	ctrl.Anchor = math.Vec2{}
	vel.Vec2 = math.Vec2{}
}
