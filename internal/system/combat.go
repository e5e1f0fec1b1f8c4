// internal/system/combat.go
package system

import (
	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/entity"
)

// CombatSystem lets every tower pick targets from the enemy roster and turns
// its shots into projectiles.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// Update runs one step for every tower and returns the number of projectiles fired.
func (s *CombatSystem) Update(speedMultiplier float64) int {
	fired := 0
	for _, tower := range s.ecs.Towers {
		for _, shot := range tower.Update(s.ecs.Enemies, speedMultiplier) {
			s.ecs.AddProjectile(component.NewProjectile(s.ecs.NewEntity(), shot))
			fired++
		}
	}
	return fired
}
