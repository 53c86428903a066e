package reedsshepp

import "math"

// NormalizeAngle reduces an angle to the half-open interval (−π, π]. It is
// defined for every finite input and idempotent.
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// cartesianToPolar converts (x, y) to polar coordinates (r, θ) with
// θ ∈ [−π, π].
func cartesianToPolar(x, y float64) (r, theta float64) {
	return math.Hypot(x, y), math.Atan2(y, x)
}
