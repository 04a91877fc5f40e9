// Package gamemath holds the pure motion formulas shared by the character
// systems. Nothing here keeps state.
package gamemath

import "time"

// JumpAscentVelocity eases the upward velocity from jumpVelocity down to zero
// across the ascent window. The result is never negative.
func JumpAscentVelocity(jumpVelocity float64, elapsed, ascent time.Duration) float64 {
	if ascent <= 0 || elapsed >= ascent {
		return 0
	}
	v := jumpVelocity * float64(ascent-elapsed) / float64(ascent)
	if v < 0 {
		return 0
	}
	return v
}

// JumpCutVelocity bleeds off upward velocity once the jump button was let go.
func JumpCutVelocity(velocity, decay float64) float64 {
	return velocity * decay
}

// FallVelocity accumulates gravity over dt and clamps the result to maxFall.
func FallVelocity(velocity, gravity, maxFall float64, dt time.Duration) float64 {
	velocity += gravity * dt.Seconds()
	if velocity > maxFall {
		return maxFall
	}
	return velocity
}

// HorizontalDisplacement is how far a character travels in dt. direction is
// -1, 0 or 1.
func HorizontalDisplacement(direction, speed float64, dt time.Duration) float64 {
	return direction * speed * dt.Seconds()
}
