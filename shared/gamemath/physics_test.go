package gamemath

import "testing"

func TestApproach(t *testing.T) {
	tests := []struct {
		name                  string
		current, target, step float64
		want                  float64
	}{
		{"snaps when close", 1.9, 2, 0.6, 2},
		{"steps up", 0, 2, 0.6, 0.6},
		{"steps down", 2, -2, 0.5, 1.5},
		{"already there", -1, -1, 0.5, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Approach(tt.current, tt.target, tt.step); got != tt.want {
				t.Errorf("Approach(%v, %v, %v) = %v, want %v", tt.current, tt.target, tt.step, got, tt.want)
			}
		})
	}
}

func TestSmoothVelocity(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		airborne        bool
		want            float64
	}{
		{"accelerate on ground", 0, 2, false, 0.6},
		{"decelerate on ground", 2, 0, false, 1.2},
		{"reverse uses decel", 1, -2, false, 0.2},
		{"air control scales accel", 0, 2, true, 0.36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SmoothVelocity(tt.current, tt.target, 0.6, 0.8, 0.6, tt.airborne)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("SmoothVelocity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyGravity(t *testing.T) {
	if got := ApplyGravity(9.9, 0.3, 10); got != 10 {
		t.Errorf("ApplyGravity capped = %v, want 10", got)
	}
	if got := ApplyGravity(20, 0.5, -1); got != 20.5 {
		t.Errorf("ApplyGravity uncapped = %v, want 20.5", got)
	}
	if got := ClampSpeed(-7, 3); got != -3 {
		t.Errorf("ClampSpeed = %v, want -3", got)
	}
}
