// internal/utils/math.go
package utils

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Distance is the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// MoveToward steps (x, y) toward (tx, ty) by step. It reports arrived when
// the remaining distance is shorter than step; the position is then snapped
// to the target.
func MoveToward(x, y, tx, ty, step float64) (nx, ny float64, arrived bool) {
	dx, dy := tx-x, ty-y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < step {
		return tx, ty, true
	}
	if dist == 0 {
		return x, y, false
	}
	return x + dx/dist*step, y + dy/dist*step, false
}
