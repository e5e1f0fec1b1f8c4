// internal/component/movement.go
package component

import "math"

// Position is a point in isometric world space.
type Position struct {
	X, Y float64
}

// DistanceTo is the Euclidean distance to o.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Path is a waypoint sequence and the index of the waypoint being walked to.
type Path struct {
	Waypoints    []Position
	CurrentIndex int
}

// Done reports whether the cursor has passed the final waypoint.
func (p *Path) Done() bool {
	return p.CurrentIndex >= len(p.Waypoints)
}
