package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/pkg/grid"
)

func newTower(t *testing.T, ecs *ECS, cell grid.Cell) *component.Tower {
	t.Helper()
	def, err := defs.DefaultLibrary().Tower(defs.TowerBasic)
	require.NoError(t, err)
	tower, err := component.NewTower(ecs.NewEntity(), def, cell, component.Position{})
	require.NoError(t, err)
	return tower
}

func TestNewEntityIDsAreUnique(t *testing.T) {
	ecs := NewECS()
	a, b := ecs.NewEntity(), ecs.NewEntity()
	assert.NotEqual(t, a, b)
	assert.NotZero(t, a)
	assert.Equal(t, component.BuildState, ecs.GameState)
}

func TestTowerOccupancy(t *testing.T) {
	ecs := NewECS()
	cell := grid.Cell{Col: 3, Row: 2}
	first := newTower(t, ecs, cell)

	require.True(t, ecs.AddTower(first))
	assert.False(t, ecs.AddTower(newTower(t, ecs, cell)))
	assert.Len(t, ecs.Towers, 1)
	assert.Same(t, first, ecs.TowerAt(cell))
	assert.Same(t, first, ecs.Tower(first.ID))

	assert.Same(t, first, ecs.RemoveTower(first.ID))
	assert.Nil(t, ecs.TowerAt(cell))
	assert.Nil(t, ecs.RemoveTower(first.ID))
	assert.True(t, ecs.AddTower(newTower(t, ecs, cell)))
}

func TestSweepKeepsSpawnOrder(t *testing.T) {
	ecs := NewECS()
	var enemies []*component.Enemy
	for i := 0; i < 5; i++ {
		e := component.NewEnemy(ecs.NewEntity(), component.SpawnEntry{Health: 10}, nil)
		enemies = append(enemies, e)
		ecs.AddEnemy(e)
	}
	enemies[1].Remove()
	enemies[3].TakeDamage(50)

	assert.Equal(t, 3, ecs.ActiveEnemies())
	ecs.Sweep()
	assert.Equal(t, []*component.Enemy{enemies[0], enemies[2], enemies[4]}, ecs.Enemies)
}

func TestClearEnemiesIsSilent(t *testing.T) {
	ecs := NewECS()
	e := component.NewEnemy(ecs.NewEntity(), component.SpawnEntry{Health: 10}, nil)
	ecs.AddEnemy(e)
	ecs.ClearEnemies()

	assert.Empty(t, ecs.Enemies)
	assert.False(t, e.Alive())
}

func TestSelection(t *testing.T) {
	ecs := NewECS()
	a := newTower(t, ecs, grid.Cell{Col: 0, Row: 0})
	b := newTower(t, ecs, grid.Cell{Col: 1, Row: 0})
	ecs.AddTower(a)
	ecs.AddTower(b)
	assert.Nil(t, ecs.Selected())

	b.IsSelected = true
	assert.Same(t, b, ecs.Selected())
	ecs.ClearSelection()
	assert.Nil(t, ecs.Selected())
}
