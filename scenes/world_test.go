package scenes

import (
	"testing"
	"time"
)

func TestFrameDelta(t *testing.T) {
	base := time.Unix(100, 0)

	tests := []struct {
		name string
		last time.Time
		now  time.Time
		want float64
	}{
		{"regular frame", base, base.Add(20 * time.Millisecond), 0.02},
		{"stall is capped", base, base.Add(2 * time.Second), maxFrameDelta},
		{"clock went backwards", base, base.Add(-time.Second), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameDelta(tt.last, tt.now); got != tt.want {
				t.Fatalf("frameDelta = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrameDeltaFirstFrame(t *testing.T) {
	if got := frameDelta(time.Time{}, time.Now()); got <= 0 || got > maxFrameDelta {
		t.Fatalf("first frame delta = %v", got)
	}
}
