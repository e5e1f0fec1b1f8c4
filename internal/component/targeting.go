// internal/component/targeting.go
package component

import (
	"fmt"

	"iso-tower-defense/internal/defs"
)

// TargetStrategy picks one enemy among candidates that are already in range.
type TargetStrategy interface {
	Select(origin Position, inRange []*Enemy) *Enemy
}

// FirstStrategy takes the earliest candidate, i.e. the oldest spawned enemy.
type FirstStrategy struct{}

func (FirstStrategy) Select(_ Position, inRange []*Enemy) *Enemy {
	if len(inRange) == 0 {
		return nil
	}
	return inRange[0]
}

// ClosestStrategy takes the candidate nearest to the tower; ties go to the later one.
type ClosestStrategy struct{}

func (ClosestStrategy) Select(origin Position, inRange []*Enemy) *Enemy {
	var best *Enemy
	bestDist := 0.0
	for _, e := range inRange {
		d := origin.DistanceTo(e.Position)
		if best == nil || d <= bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// StrongestStrategy takes the candidate with the most current health; ties go to the later one.
type StrongestStrategy struct{}

func (StrongestStrategy) Select(_ Position, inRange []*Enemy) *Enemy {
	var best *Enemy
	for _, e := range inRange {
		if best == nil || e.Health >= best.Health {
			best = e
		}
	}
	return best
}

// StrategyFor resolves a strategy name once, at tower construction.
func StrategyFor(s defs.Strategy) (TargetStrategy, error) {
	switch s {
	case defs.StrategyFirst:
		return FirstStrategy{}, nil
	case defs.StrategyClosest:
		return ClosestStrategy{}, nil
	case defs.StrategyStrongest:
		return StrongestStrategy{}, nil
	default:
		return nil, fmt.Errorf("strategy %q: %w", s, defs.ErrUnknownKind)
	}
}

// InRange filters live enemies within radius of origin, keeping roster order.
func InRange(origin Position, radius float64, enemies []*Enemy) []*Enemy {
	var out []*Enemy
	for _, e := range enemies {
		if e.Alive() && origin.DistanceTo(e.Position) <= radius {
			out = append(out, e)
		}
	}
	return out
}
