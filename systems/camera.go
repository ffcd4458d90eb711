package systems

import (
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/automoto/homestead/logging"
	"github.com/automoto/homestead/shared/gamemath"
	"github.com/automoto/homestead/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera derives the zoom from the window, keeps the player inside
// the padded dead zone and then keeps the view inside the map. The map
// clamp runs last so it wins when the two disagree.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	window, ok := first(w, components.Window)
	if !ok || window.Width <= 0 || window.Height <= 0 {
		logging.L().Debugw("camera skipped", "reason", "no window size")
		return
	}

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return // no player, keep the last framing
	}

	levelData, ok := first(w, components.Level)
	if !ok {
		return
	}

	scale := gamemath.CameraScale(window.Width, window.Height, cfg.Camera.DiagonalReference)
	if scale <= 0 {
		return
	}
	camera.Scale = scale

	target := components.WorldPosition(playerEntry)
	sprite := components.Sprite.Get(playerEntry)

	halfW, halfH := gamemath.DeadZone(window.Width, window.Height, sprite.Width, sprite.Height, cfg.Camera.Padding, scale)
	position := gamemath.FollowDeadZone(camera.Position, target, halfW, halfH)

	viewW, viewH := gamemath.ViewHalfExtents(window.Width, window.Height, scale)
	camera.Position = gamemath.ClampToBounds(position, levelData.Bounds, viewW, viewH)
}
