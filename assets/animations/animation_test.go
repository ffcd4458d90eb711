package animations

import "testing"

func TestWalkCycleStepsWhileMoving(t *testing.T) {
	for _, facing := range []Facing{FacingDown, FacingLeft, FacingRight, FacingUp} {
		t.Run(facing.String(), func(t *testing.T) {
			w := NewWalkCycle(4, 0.15)
			w.Facing = facing

			want := []int{1, 2, 3, 0, 1}
			for i, step := range want {
				if !w.Update(0.2, true) {
					t.Fatalf("tick %d: timer did not elapse", i)
				}
				if w.Step != step {
					t.Fatalf("tick %d: step = %d, want %d", i, w.Step, step)
				}
				if w.Index() != int(facing)*4+step {
					t.Fatalf("tick %d: index = %d, want %d", i, w.Index(), int(facing)*4+step)
				}
			}
		})
	}
}

func TestWalkCycleWaitsForTimer(t *testing.T) {
	w := NewWalkCycle(4, 0.15)

	if w.Update(0.05, true) {
		t.Fatalf("timer elapsed after 0.05s")
	}
	if w.Step != 0 {
		t.Fatalf("step advanced before the timer elapsed")
	}
	if w.Update(0.05, true) {
		t.Fatalf("timer elapsed after 0.10s")
	}
	if !w.Update(0.1, true) {
		t.Fatalf("timer did not elapse after 0.20s")
	}
	if w.Step != 1 {
		t.Fatalf("step = %d, want 1", w.Step)
	}
}

func TestWalkCycleResetsWhenStopped(t *testing.T) {
	w := NewWalkCycle(4, 0.15)
	w.Facing = FacingRight
	w.Update(0.2, true)
	w.Update(0.2, true)
	if w.Step != 2 {
		t.Fatalf("step = %d, want 2", w.Step)
	}

	// Stopping shows the idle frame right away, before the timer elapses.
	w.Update(0.01, false)
	if w.Step != 0 {
		t.Fatalf("step = %d after stopping, want 0", w.Step)
	}
	if w.Index() != w.Base() || w.Base() != 8 {
		t.Fatalf("index = %d base = %d, want 8", w.Index(), w.Base())
	}

	w.Update(0.2, false)
	if w.Step != 0 {
		t.Fatalf("step = %d on stationary tick, want 0", w.Step)
	}
}

func TestFacingRowOffsets(t *testing.T) {
	cases := []struct {
		facing Facing
		base   int
	}{
		{FacingDown, 0},
		{FacingLeft, 4},
		{FacingRight, 8},
		{FacingUp, 12},
	}
	for _, c := range cases {
		w := NewWalkCycle(4, 0.15)
		w.Facing = c.facing
		if w.Base() != c.base {
			t.Errorf("%s base = %d, want %d", c.facing, w.Base(), c.base)
		}
	}
}

func TestWalkCycleCadenceIgnoresFrameDelta(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"60fps", 1.0 / 60},
		{"10fps", 0.1},
		{"slow frames", 0.12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWalkCycle(4, 0.15)
			steps := 0
			for elapsed := 0.0; elapsed < 3-1e-9; elapsed += tt.dt {
				if w.Update(tt.dt, true) {
					steps++
				}
			}
			if steps < 19 || steps > 20 {
				t.Fatalf("%d steps in 3s at dt=%v, want about 20", steps, tt.dt)
			}
		})
	}
}

func TestWalkCycleSetStepDurationKeepsProgress(t *testing.T) {
	w := NewWalkCycle(4, 0.15)
	w.Update(0.1, true)

	w.SetStepDuration(0.3)
	if w.StepDuration() != 0.3 {
		t.Fatalf("step duration = %v, want 0.3", w.StepDuration())
	}
	if w.Update(0.15, true) {
		t.Fatalf("timer elapsed after 0.25s of a 0.3s period")
	}
	if !w.Update(0.06, true) {
		t.Fatalf("timer did not elapse after 0.31s")
	}
	if w.Step != 1 {
		t.Fatalf("step = %d, want 1", w.Step)
	}
}
