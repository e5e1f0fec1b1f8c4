// internal/entity/ecs.go
package entity

import (
	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/types"
	"iso-tower-defense/pkg/grid"
)

// ECS owns every live game object. Enemies are kept in spawn order so that
// "first" targeting picks the oldest enemy; towers and projectiles keep
// creation order so a run replays identically from a seed.
type ECS struct {
	NextID      types.EntityID
	Enemies     []*component.Enemy
	Towers      []*component.Tower
	Projectiles []*component.Projectile
	Wave        *component.Wave
	GameState   component.GameState

	towerAt map[grid.Cell]*component.Tower
}

func NewECS() *ECS {
	return &ECS{
		NextID:    1,
		GameState: component.BuildState,
		towerAt:   make(map[grid.Cell]*component.Tower),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

func (ecs *ECS) AddEnemy(e *component.Enemy) {
	ecs.Enemies = append(ecs.Enemies, e)
}

func (ecs *ECS) AddProjectile(p *component.Projectile) {
	ecs.Projectiles = append(ecs.Projectiles, p)
}

// AddTower registers a tower on its cell. It reports false if the cell is taken.
func (ecs *ECS) AddTower(t *component.Tower) bool {
	if _, taken := ecs.towerAt[t.Cell]; taken {
		return false
	}
	ecs.towerAt[t.Cell] = t
	ecs.Towers = append(ecs.Towers, t)
	return true
}

// TowerAt returns the tower on a cell, or nil.
func (ecs *ECS) TowerAt(c grid.Cell) *component.Tower {
	return ecs.towerAt[c]
}

func (ecs *ECS) Tower(id types.EntityID) *component.Tower {
	for _, t := range ecs.Towers {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (ecs *ECS) RemoveTower(id types.EntityID) *component.Tower {
	for i, t := range ecs.Towers {
		if t.ID == id {
			ecs.Towers = append(ecs.Towers[:i], ecs.Towers[i+1:]...)
			delete(ecs.towerAt, t.Cell)
			return t
		}
	}
	return nil
}

// ActiveEnemies counts enemies still in play.
func (ecs *ECS) ActiveEnemies() int {
	n := 0
	for _, e := range ecs.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Sweep drops destroyed enemies and projectiles, keeping order.
func (ecs *ECS) Sweep() {
	enemies := ecs.Enemies[:0]
	for _, e := range ecs.Enemies {
		if e.Alive() {
			enemies = append(enemies, e)
		}
	}
	clear(ecs.Enemies[len(enemies):])
	ecs.Enemies = enemies

	projectiles := ecs.Projectiles[:0]
	for _, p := range ecs.Projectiles {
		if p.Alive() {
			projectiles = append(projectiles, p)
		}
	}
	clear(ecs.Projectiles[len(projectiles):])
	ecs.Projectiles = projectiles
}

// ClearEnemies removes every enemy without producing outcomes.
func (ecs *ECS) ClearEnemies() {
	for _, e := range ecs.Enemies {
		e.Remove()
	}
	ecs.Enemies = nil
}

func (ecs *ECS) ClearProjectiles() {
	ecs.Projectiles = nil
}

// ClearSelection deselects every tower.
func (ecs *ECS) ClearSelection() {
	for _, t := range ecs.Towers {
		t.IsSelected = false
	}
}

// Selected returns the selected tower, or nil.
func (ecs *ECS) Selected() *component.Tower {
	for _, t := range ecs.Towers {
		if t.IsSelected {
			return t
		}
	}
	return nil
}
