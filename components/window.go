package components

import "github.com/yohamta/donburi"

// WindowData is the latest known window size in pixels. The scene refreshes
// it once per frame from the host layout.
type WindowData struct {
	Width, Height float64
}

var Window = donburi.NewComponentType[WindowData]()

// TimeData is the elapsed time since the previous frame, in seconds.
type TimeData struct {
	Delta float64
}

var Time = donburi.NewComponentType[TimeData]()

// DebugData toggles the debug overlay.
type DebugData struct {
	Overlay bool
}

var Debug = donburi.NewComponentType[DebugData]()
