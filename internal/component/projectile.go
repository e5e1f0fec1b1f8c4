// internal/component/projectile.go
package component

import (
	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/types"
	"iso-tower-defense/internal/utils"
)

// Projectile is a homing shot bound to one enemy.
type Projectile struct {
	ID       types.EntityID
	Kind     ProjectileKind
	Position Position
	Target   *Enemy
	Damage   float64
	Speed    float64

	destroyed bool
}

// NewProjectile turns a tower shot into a live projectile.
func NewProjectile(id types.EntityID, shot Shot) *Projectile {
	return &Projectile{
		ID:       id,
		Kind:     shot.Kind,
		Position: shot.Origin,
		Target:   shot.Target,
		Damage:   shot.Damage,
		Speed:    config.ProjectileSpeed,
	}
}

// Alive reports whether the projectile is still in flight.
func (p *Projectile) Alive() bool {
	return p != nil && !p.destroyed
}

// Advance chases the target's current position. On arrival the damage is
// applied and the enemy's outcome returned; a projectile whose target is gone
// vanishes with no effect.
func (p *Projectile) Advance(speedMultiplier float64) EnemyOutcome {
	if p.destroyed {
		return EnemyOutcome{}
	}
	if !p.Target.Alive() {
		p.destroyed = true
		return EnemyOutcome{}
	}

	dest := p.Target.Position
	x, y, arrived := utils.MoveToward(p.Position.X, p.Position.Y, dest.X, dest.Y, p.Speed*speedMultiplier)
	p.Position = Position{X: x, Y: y}
	if !arrived {
		return EnemyOutcome{}
	}
	p.destroyed = true
	return p.Target.TakeDamage(p.Damage)
}
