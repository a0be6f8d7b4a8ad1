package gamemath

// RampSpeed advances the movement speed for one tick. Attempted movement
// accelerates up to max; no movement snaps back to base.
func RampSpeed(current, base, accel, max float64, moving bool) float64 {
	if !moving {
		return base
	}
	current += accel
	if current > max {
		return max
	}
	return current
}

// StepToward returns the logical step for a held direction pair. Negative
// wins when both are held, matching the key order of the input router.
func StepToward(negative, positive bool, speed float64) float64 {
	if negative {
		return -speed
	}
	if positive {
		return speed
	}
	return 0
}
