package state

import (
	"testing"

	"iso-tower-defense/internal/app"
	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()             { *s.log = append(*s.log, "enter "+s.name) }
func (s *recordingState) Update(float64)     { *s.log = append(*s.log, "update "+s.name) }
func (s *recordingState) Draw(*ebiten.Image) {}
func (s *recordingState) Exit()              { *s.log = append(*s.log, "exit "+s.name) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine(nil)
	sm.Update(0.016)
	assert.Nil(t, sm.Current())

	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.016)
	sm.SetState(b)
	sm.SetState(nil)
	sm.Update(0.016)

	assert.Equal(t, []string{"enter a", "update a", "exit a", "enter b", "exit b"}, log)
}

func TestBuildSprites(t *testing.T) {
	lib := defs.DefaultLibrary()
	sniper, err := lib.Tower(defs.TowerSniper)
	require.NoError(t, err)

	snap := app.Snapshot{
		Towers: []app.TowerView{
			{Kind: defs.TowerSniper, X: 10, Y: 20, Level: 2, Range: 130, Selected: true},
			{Kind: defs.TowerBasic, X: 30, Y: 40, Level: 1, Range: 110, Highlighted: true},
		},
		Enemies: []app.EnemyView{
			{Kind: defs.EnemyBoss, X: 1, Y: 2, Health: 0.5},
			{Kind: defs.EnemyKind("ghost"), X: 3, Y: 4, Health: 1},
		},
		Projectiles: []app.ProjectileView{{Kind: component.ProjectileSplash, X: 5, Y: 6}},
	}

	sprites := buildSprites(snap, lib, nil)
	require.Len(t, sprites, 5)

	assert.Equal(t, sniper.Color, sprites[0].Color)
	assert.Equal(t, "2", sprites[0].Label)
	assert.Equal(t, 130.0, sprites[0].Ring)
	assert.Equal(t, selectedStroke, sprites[0].Stroke)
	assert.Equal(t, -1.0, sprites[0].Health)

	assert.Zero(t, sprites[1].Ring, "only the selected tower shows its range")
	assert.Equal(t, highlightedStroke, sprites[1].Stroke)

	assert.Equal(t, float32(12), sprites[2].Radius)
	assert.Equal(t, 0.5, sprites[2].Health)
	assert.Equal(t, fallbackColor, sprites[3].Color)

	assert.Equal(t, float32(3), sprites[4].Radius)
	assert.Equal(t, -1.0, sprites[4].Health)

	reused := buildSprites(app.Snapshot{}, lib, sprites)
	assert.Empty(t, reused)
}
