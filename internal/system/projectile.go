// internal/system/projectile.go
package system

import (
	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/entity"
	"iso-tower-defense/internal/event"
)

// ProjectileSystem moves projectiles and reports kills.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update(speedMultiplier float64) {
	// Indexing keeps projectiles added by listeners during this step out of it.
	n := len(s.ecs.Projectiles)
	for i := 0; i < n; i++ {
		p := s.ecs.Projectiles[i]
		if !p.Alive() {
			continue
		}
		target := p.Target
		if out := p.Advance(speedMultiplier); out.Kind == component.OutcomeDead {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyKilled,
				Data: event.EnemyResolved{ID: target.ID, Kind: target.Kind, Outcome: out},
			})
		}
	}
}
