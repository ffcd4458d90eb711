package animations

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Facing selects a row of a walk-cycle sprite sheet.
type Facing int

const (
	FacingDown Facing = iota
	FacingLeft
	FacingRight
	FacingUp
)

func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	case FacingUp:
		return "up"
	}
	return "unknown"
}

// WalkCycle steps through the columns of one sprite sheet row on a fixed
// period, independent of the render frame rate.
type WalkCycle struct {
	Facing Facing
	Step   int
	Steps  int // columns per row

	timer   *gween.Tween
	period  float64
	elapsed float64 // time into the current period
}

func NewWalkCycle(steps int, stepDuration float64) *WalkCycle {
	return &WalkCycle{
		Facing: FacingDown,
		Steps:  steps,
		timer:  gween.New(0, 1, float32(stepDuration), ease.Linear),
		period: stepDuration,
	}
}

// StepDuration returns the timer period in seconds.
func (w *WalkCycle) StepDuration() float64 {
	return w.period
}

// SetStepDuration changes the timer period, keeping the time already spent
// in the current step.
func (w *WalkCycle) SetStepDuration(d float64) {
	if d <= 0 || d == w.period {
		return
	}
	w.period = d
	w.timer = gween.New(0, 1, float32(d), ease.Linear)
	w.elapsed = math.Min(w.elapsed, d)
	w.timer.Set(float32(w.elapsed))
}

// Update advances the step timer by dt seconds. A stationary cycle always
// shows the first column; a moving one advances a column each time the
// timer elapses. Reports whether the timer elapsed.
func (w *WalkCycle) Update(dt float64, moving bool) bool {
	if !moving {
		w.Step = 0
	}

	w.elapsed += dt
	if _, finished := w.timer.Update(float32(dt)); !finished {
		return false
	}
	// Carry the time past the period into the next step so the cadence
	// does not depend on the frame delta.
	w.elapsed = math.Mod(math.Max(w.elapsed-w.period, 0), w.period)
	w.timer.Reset()
	w.timer.Set(float32(w.elapsed))

	if moving {
		w.Step = (w.Step + 1) % w.Steps
	} else {
		w.Step = 0
	}
	return true
}

// Stop shows the idle pose of the current row.
func (w *WalkCycle) Stop() {
	w.Step = 0
}

// Base returns the sheet index of the first column of the current row.
func (w *WalkCycle) Base() int {
	return int(w.Facing) * w.Steps
}

// Index returns the sheet index of the frame to draw.
func (w *WalkCycle) Index() int {
	return w.Base() + w.Step
}
