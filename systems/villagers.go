package systems

import (
	"github.com/automoto/homestead/components"
	"github.com/yohamta/donburi"
)

// UpdateVillagers advances each villager along its patrol leg and turns it
// around at the end.
func UpdateVillagers(w donburi.World) {
	t, ok := first(w, components.Time)
	if !ok {
		return
	}

	components.Villager.Each(w, func(e *donburi.Entry) {
		v := components.Villager.Get(e)
		if v.Tween == nil {
			return
		}
		progress, finished := v.Tween.Update(float32(t.Delta))

		from, to := v.From, v.To
		if !v.Outbound {
			from, to = to, from
		}
		p := float64(progress)
		tr := components.Transform.Get(e)
		tr.Local.X = from.X + (to.X-from.X)*p
		tr.Local.Y = from.Y + (to.Y-from.Y)*p

		if finished {
			v.Outbound = !v.Outbound
			v.Tween.Reset()
		}
	})
}
