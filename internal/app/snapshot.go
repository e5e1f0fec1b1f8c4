// internal/app/snapshot.go
package app

import (
	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/internal/types"
	"iso-tower-defense/pkg/grid"
)

type EnemyView struct {
	ID     types.EntityID
	Kind   defs.EnemyKind
	X, Y   float64
	Health float64 // fraction of max health
}

type TowerView struct {
	ID          types.EntityID
	Kind        defs.TowerKind
	Cell        grid.Cell
	X, Y        float64
	Level       int
	Range       float64
	Selected    bool
	Highlighted bool
}

type ProjectileView struct {
	Kind component.ProjectileKind
	X, Y float64
}

// Snapshot is the per-frame read model for renderers.
type Snapshot struct {
	RunID        string
	Balance      float64
	BaseHealth   int
	Wave         int
	Phase        component.GameState
	Paused       bool
	Speed        float64
	BossWave     bool
	BossIncoming bool
	Cols, Rows   int
	Path         []grid.Cell
	Enemies      []EnemyView
	Towers       []TowerView
	Projectiles  []ProjectileView
	Selected     *component.TowerStats
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		RunID:      g.RunID.String(),
		Balance:    g.Ledger.Balance(),
		BaseHealth: g.StateSystem.BaseHealth(),
		Wave:       g.WaveNumber(),
		Phase:      g.ECS.GameState,
		Paused:     g.isPaused,
		Speed:      g.SpeedMultiplier,
		Cols:       g.Grid.Cols,
		Rows:       g.Grid.Rows,
		Path:       g.Grid.Path,
	}
	if w := g.ECS.Wave; w != nil && g.ECS.GameState == component.WaveState {
		s.BossWave = w.IsBossWave
		s.BossIncoming = w.IsBossWave && w.Delay > 0
	}
	for _, e := range g.ECS.Enemies {
		if !e.Alive() {
			continue
		}
		s.Enemies = append(s.Enemies, EnemyView{ID: e.ID, Kind: e.Kind, X: e.Position.X, Y: e.Position.Y, Health: e.HealthFraction()})
	}
	for _, t := range g.ECS.Towers {
		s.Towers = append(s.Towers, TowerView{
			ID: t.ID, Kind: t.Kind, Cell: t.Cell,
			X: t.Position.X, Y: t.Position.Y,
			Level: t.Level, Range: t.Range,
			Selected: t.IsSelected, Highlighted: t.IsHighlighted,
		})
		if t.IsSelected {
			stats := t.Stats()
			s.Selected = &stats
		}
	}
	for _, p := range g.ECS.Projectiles {
		if p.Alive() {
			s.Projectiles = append(s.Projectiles, ProjectileView{Kind: p.Kind, X: p.Position.X, Y: p.Position.Y})
		}
	}
	return s
}
