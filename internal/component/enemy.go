// internal/component/enemy.go
package component

import (
	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/internal/types"
	"iso-tower-defense/internal/utils"
)

// OutcomeKind tells the owner what happened to an enemy during a step.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeDead
	OutcomeReachedBase
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeDead:
		return "dead"
	case OutcomeReachedBase:
		return "reached_base"
	default:
		return "unknown"
	}
}

// EnemyOutcome is returned by Advance and TakeDamage in place of callbacks.
type EnemyOutcome struct {
	Kind   OutcomeKind
	Bounty float64 // OutcomeDead
	Damage int     // OutcomeReachedBase
}

// Enemy is a mobile unit walking the level path.
type Enemy struct {
	ID        types.EntityID
	Kind      defs.EnemyKind
	Health    float64
	MaxHealth float64
	Speed     float64
	Bounty    float64
	Damage    int
	Position  Position
	Path      Path

	pathFactor float64
	destroyed  bool
}

// NewEnemy places an enemy on the first waypoint.
func NewEnemy(id types.EntityID, entry SpawnEntry, waypoints []Position) *Enemy {
	e := &Enemy{
		ID:         id,
		Kind:       entry.Kind,
		Health:     entry.Health,
		MaxHealth:  entry.Health,
		Speed:      entry.Speed,
		Bounty:     entry.Bounty,
		Damage:     entry.Damage,
		Path:       Path{Waypoints: waypoints},
		pathFactor: PathFactor(len(waypoints)),
	}
	if len(waypoints) > 0 {
		e.Position = waypoints[0]
	}
	return e
}

// PathFactor normalises walking speed so waves last about as long on long
// generated paths as on the short authored one.
func PathFactor(waypoints int) float64 {
	if waypoints <= config.PathFactorMinPoints {
		return 1
	}
	return utils.Clamp(config.ReferencePathLength/float64(waypoints), config.MinPathFactor, config.MaxPathFactor)
}

// Alive reports whether the enemy is still in play.
func (e *Enemy) Alive() bool {
	return e != nil && !e.destroyed
}

// Remove takes the enemy out of play without producing an outcome.
func (e *Enemy) Remove() {
	e.destroyed = true
}

// StepLength is the distance covered in one step at the given multiplier.
func (e *Enemy) StepLength(speedMultiplier float64) float64 {
	return e.Speed * speedMultiplier * e.pathFactor
}

// Advance moves the enemy one step along its path.
func (e *Enemy) Advance(speedMultiplier float64) EnemyOutcome {
	if e.destroyed {
		return EnemyOutcome{}
	}
	if e.Path.Done() {
		return e.reachBase()
	}

	target := e.Path.Waypoints[e.Path.CurrentIndex]
	x, y, arrived := utils.MoveToward(e.Position.X, e.Position.Y, target.X, target.Y, e.StepLength(speedMultiplier))
	e.Position = Position{X: x, Y: y}
	if arrived {
		e.Path.CurrentIndex++
		if e.Path.Done() {
			return e.reachBase()
		}
	}
	return EnemyOutcome{}
}

// TakeDamage subtracts health; the enemy dies at zero or below.
func (e *Enemy) TakeDamage(amount float64) EnemyOutcome {
	if e.destroyed {
		return EnemyOutcome{}
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.destroyed = true
		return EnemyOutcome{Kind: OutcomeDead, Bounty: e.Bounty}
	}
	return EnemyOutcome{}
}

// HealthFraction is the health bar fill in [0, 1].
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return utils.Clamp(e.Health/e.MaxHealth, 0, 1)
}

func (e *Enemy) reachBase() EnemyOutcome {
	e.destroyed = true
	return EnemyOutcome{Kind: OutcomeReachedBase, Damage: e.Damage}
}
