// Package hostinput polls ebiten's keyboard, mouse and touch state into the
// world's Input singleton. It is the only package that reads devices, so
// the rest of the systems can run headless in tests.
package hostinput

import (
	"sort"

	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

var keysByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[k.String()] = k
	}
	return m
}()

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// The touch that started the current drag, if any.
var (
	activeTouch ebiten.TouchID
	touching    bool
)

// UnknownKeys returns the binding names ebiten does not know, sorted.
func UnknownKeys() []string {
	var unknown []string
	for _, names := range cfg.Input.Bindings {
		for _, name := range names {
			if _, ok := keysByName[name]; !ok {
				unknown = append(unknown, name)
			}
		}
	}
	sort.Strings(unknown)
	return unknown
}

// Poll rolls the Input singleton to a new frame and fills it from the
// devices. Must run FIRST in the system order.
func Poll(w donburi.World) {
	e, ok := components.Input.First(w)
	if !ok {
		return
	}
	input := components.Input.Get(e)
	input.Advance()

	for action, names := range cfg.Input.Bindings {
		for _, name := range names {
			if key, ok := keysByName[name]; ok && ebiten.IsKeyPressed(key) {
				input.Current[action] = true
			}
		}
	}

	pollPointer(input)
}

// pollPointer treats the left mouse button and the first touch alike.
func pollPointer(input *components.InputData) {
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if !touching && len(touchIDs) > 0 {
		activeTouch = touchIDs[0]
		touching = true
	}
	if touching && inpututil.IsTouchJustReleased(activeTouch) {
		touching = false
	}

	if touching {
		x, y := ebiten.TouchPosition(activeTouch)
		input.PointerPressed = true
		input.PointerKnown = true
		input.Pointer = math.Vec2{X: float64(x), Y: float64(y)}
		return
	}

	x, y := ebiten.CursorPosition()
	input.PointerPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	input.PointerKnown = ebiten.IsFocused()
	input.Pointer = math.Vec2{X: float64(x), Y: float64(y)}
}
