package system

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/internal/economy"
	"iso-tower-defense/internal/entity"
	"iso-tower-defense/internal/event"
	"iso-tower-defense/pkg/grid"
)

func placeTower(t *testing.T, ecs *entity.ECS, kind defs.TowerKind, pos component.Position) *component.Tower {
	t.Helper()
	def, err := defs.DefaultLibrary().Tower(kind)
	require.NoError(t, err)
	tower, err := component.NewTower(ecs.NewEntity(), def, grid.Cell{Col: len(ecs.Towers)}, pos)
	require.NoError(t, err)
	require.True(t, ecs.AddTower(tower))
	return tower
}

func addEnemy(ecs *entity.ECS, pos component.Position, health float64) *component.Enemy {
	e := component.NewEnemy(ecs.NewEntity(), component.SpawnEntry{Kind: defs.EnemyBasic, Health: health, Bounty: 15}, nil)
	e.Position = pos
	ecs.AddEnemy(e)
	return e
}

func TestSplashVolley(t *testing.T) {
	ecs := entity.NewECS()
	placeTower(t, ecs, defs.TowerSplash, component.Position{})
	addEnemy(ecs, component.Position{X: 10}, 50)
	addEnemy(ecs, component.Position{X: 50}, 50)
	addEnemy(ecs, component.Position{Y: 90}, 50)
	addEnemy(ecs, component.Position{X: 600}, 50)
	addEnemy(ecs, component.Position{X: 900, Y: 900}, 50)

	fired := NewCombatSystem(ecs).Update(1)
	assert.Equal(t, 5, fired)
	assert.Len(t, ecs.Projectiles, 5)
}

func TestKillCreditsBounty(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	ledger := economy.NewLedger(0)
	d.Subscribe(event.EnemyKilled, ledger)
	rec := &recorder{}
	d.Subscribe(event.EnemyKilled, rec)

	placeTower(t, ecs, defs.TowerBasic, component.Position{})
	enemy := addEnemy(ecs, component.Position{X: 30}, 10)

	combat := NewCombatSystem(ecs)
	projectiles := NewProjectileSystem(ecs, d)
	for i := 0; i < 50 && enemy.Alive(); i++ {
		combat.Update(1)
		projectiles.Update(1)
		ecs.Sweep()
	}

	assert.False(t, enemy.Alive())
	assert.Equal(t, 15.0, ledger.Balance())
	require.Equal(t, 1, rec.count(event.EnemyKilled))
	killed := rec.events[0].Data.(event.EnemyResolved)
	assert.Equal(t, enemy.ID, killed.ID)
	assert.Empty(t, ecs.Projectiles)
	assert.Empty(t, ecs.Enemies)
}

func TestOverkillPaysOnce(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	ledger := economy.NewLedger(0)
	d.Subscribe(event.EnemyKilled, ledger)

	enemy := addEnemy(ecs, component.Position{X: 1}, 5)
	for i := 0; i < 3; i++ {
		ecs.AddProjectile(component.NewProjectile(ecs.NewEntity(), component.Shot{Target: enemy, Damage: 10}))
	}
	NewProjectileSystem(ecs, d).Update(1)

	assert.Equal(t, 15.0, ledger.Balance())
	for _, p := range ecs.Projectiles {
		assert.False(t, p.Alive())
	}
}

func TestBaseDamage(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	states := NewStateSystem(ecs, d, 4, slog.New(slog.NewTextHandler(io.Discard, nil)))

	hit := func(dmg int) {
		d.Dispatch(event.Event{Type: event.EnemyReachedBase, Data: event.EnemyResolved{
			Outcome: component.EnemyOutcome{Kind: component.OutcomeReachedBase, Damage: dmg},
		}})
	}
	hit(3)
	assert.Equal(t, 1, states.BaseHealth())
	hit(5)
	assert.Equal(t, 0, states.BaseHealth())
}

func TestPhaseTransitions(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec, event.WaveEnded, event.GameOver, event.Victory)
	states := NewStateSystem(ecs, d, 20, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tower := placeTower(t, ecs, defs.TowerBasic, component.Position{})
	tower.IsSelected = true
	states.SwitchToWaveState()
	assert.Equal(t, component.WaveState, states.Current())
	assert.False(t, tower.IsSelected)

	ecs.AddProjectile(component.NewProjectile(ecs.NewEntity(), component.Shot{}))
	states.SwitchToBuildState(event.WaveInfo{Index: 0})
	assert.Equal(t, component.BuildState, states.Current())
	assert.Empty(t, ecs.Projectiles)
	assert.False(t, states.Ended())

	states.SwitchToVictory(event.WaveInfo{Index: 9})
	assert.True(t, states.Ended())
	assert.Equal(t, 1, rec.count(event.WaveEnded))
	assert.Equal(t, 1, rec.count(event.Victory))
}
