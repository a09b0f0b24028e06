package gamemath

import "math"

// Approach moves current toward target by at most step.
func Approach(current, target, step float64) float64 {
	if math.Abs(target-current) <= step {
		return target
	}
	if target > current {
		return current + step
	}
	return current - step
}

// SmoothVelocity steps a horizontal velocity toward target. Speeding up uses
// accel, slowing down or reversing uses decel, and both are scaled by
// airControl while airborne.
func SmoothVelocity(current, target, accel, decel, airControl float64, airborne bool) float64 {
	slowing := math.Abs(target) < math.Abs(current) || current != 0 && sign(target) != sign(current)
	step := accel
	if slowing {
		step = decel
	}
	if airborne {
		step *= airControl
	}
	return Approach(current, target, step)
}

// ApplyGravity accelerates velY by gravity and caps it at terminal. A
// negative terminal disables the cap.
func ApplyGravity(velY, gravity, terminal float64) float64 {
	velY += gravity
	if terminal >= 0 && velY > terminal {
		return terminal
	}
	return velY
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
