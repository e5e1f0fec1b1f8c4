package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectileHomesAndHits(t *testing.T) {
	target := enemyAt(1, 10, 0, 20)
	target.Bounty = 15
	p := NewProjectile(7, Shot{Kind: ProjectileSniper, Origin: Position{}, Target: target, Damage: 25})
	assert.Equal(t, 2.0, p.Speed)

	p.Advance(1)
	assert.InDelta(t, 2.0, p.Position.X, 1e-9)

	// The target moves; the projectile follows its current position.
	target.Position = Position{X: 2, Y: 6}
	p.Advance(1)
	assert.InDelta(t, 2.0, p.Position.X, 1e-9)
	assert.InDelta(t, 2.0, p.Position.Y, 1e-9)

	var out EnemyOutcome
	for i := 0; i < 10 && p.Alive(); i++ {
		out = p.Advance(1)
	}
	assert.False(t, p.Alive())
	assert.Equal(t, OutcomeDead, out.Kind)
	assert.Equal(t, 15.0, out.Bounty)
	assert.False(t, target.Alive())
}

func TestProjectileNonLethalHit(t *testing.T) {
	target := enemyAt(1, 1, 0, 100)
	p := NewProjectile(1, Shot{Target: target, Damage: 10})

	out := p.Advance(1)
	assert.Equal(t, OutcomeNone, out.Kind)
	assert.False(t, p.Alive())
	assert.Equal(t, 90.0, target.Health)
}

func TestProjectileStaleTarget(t *testing.T) {
	target := enemyAt(1, 100, 0, 100)
	p := NewProjectile(1, Shot{Target: target, Damage: 10})
	target.Remove()

	out := p.Advance(1)
	assert.Equal(t, OutcomeNone, out.Kind)
	assert.False(t, p.Alive())
	assert.Equal(t, Position{}, p.Position)
	assert.Equal(t, 100.0, target.Health)
}

func TestProjectileNilTarget(t *testing.T) {
	p := NewProjectile(1, Shot{Damage: 10})
	assert.Equal(t, OutcomeNone, p.Advance(1).Kind)
	assert.False(t, p.Alive())
}
