package systems

import (
	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/yohamta/donburi"
)

// ApplyTuning pushes reloaded config values into live entities. Values read
// every frame (speed, sensitivity, camera, depth) need nothing; the walk
// cycle period is copied into each cycle. Steps and sprite sizes shape the
// sprite sheets and only take effect on restart.
func ApplyTuning(w donburi.World) {
	components.Animation.Each(w, func(e *donburi.Entry) {
		if cycle := components.Animation.Get(e).Cycle; cycle != nil {
			cycle.SetStepDuration(cfg.Player.StepDuration)
		}
	})
}
