package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/pkg/grid"
)

func TestAutoplayPlacesCheapestNearPath(t *testing.T) {
	g, _ := newTestGame(t, nil, nil)
	bot := &Autoplay{}

	placed, upgraded := bot.Act(g)
	assert.Equal(t, 2, placed)
	assert.Zero(t, upgraded)
	assert.Zero(t, g.Ledger.Balance())
	require.Len(t, g.ECS.Towers, 2)
	assert.Equal(t, grid.Cell{Col: 0, Row: 0}, g.ECS.Towers[0].Cell)
	assert.Equal(t, grid.Cell{Col: 1, Row: 0}, g.ECS.Towers[1].Cell)
	for _, tw := range g.ECS.Towers {
		assert.Equal(t, defs.TowerBasic, tw.Kind)
	}
	assert.Nil(t, g.Selected())

	placed, upgraded = bot.Act(g)
	assert.Zero(t, placed+upgraded, "nothing affordable")
}

func TestAutoplayUpgradesWhenFull(t *testing.T) {
	g, _ := newTestGame(t, nil, nil)
	bot := &Autoplay{MaxTowers: 2}
	bot.Act(g)

	g.Ledger.Credit(150)
	placed, upgraded := bot.Act(g)
	assert.Zero(t, placed)
	assert.Equal(t, 2, upgraded)
	assert.Zero(t, g.Ledger.Balance())
	for _, tw := range g.ECS.Towers {
		assert.Equal(t, 2, tw.Level)
	}
	assert.Nil(t, g.Selected())
}

func TestAutoplayIdleOutsideBuildPhase(t *testing.T) {
	g, _ := newTestGame(t, nil, nil)
	require.NoError(t, g.StartWave())

	placed, upgraded := (&Autoplay{}).Act(g)
	assert.Zero(t, placed+upgraded)
	assert.Empty(t, g.ECS.Towers)
}

func TestAutoplayFinishesScriptedGame(t *testing.T) {
	g, _ := newTestGame(t, nil, nil)
	bot := &Autoplay{}

	for wave := 0; wave < 20 && g.ECS.GameState == component.BuildState; wave++ {
		bot.Act(g)
		require.NoError(t, g.StartWave())
		runUntil(t, g, 50000)
	}
	assert.Contains(t, []component.GameState{component.VictoryState, component.GameOverState}, g.ECS.GameState)
	assert.NotEmpty(t, g.ECS.Towers)
}
