// internal/app/autoplay.go
package app

import (
	"math"

	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/pkg/grid"
)

// DefaultMaxTowers is how many towers the autoplayer builds before it only upgrades.
const DefaultMaxTowers = 8

// Autoplay is a greedy build-phase bot: it places the cheapest tower on the
// free cell closest to the path and, once it has MaxTowers, upgrades the
// lowest-level tower whenever it can pay.
type Autoplay struct {
	MaxTowers int
}

// Act spends the ledger during the build phase. It returns how many towers
// were placed and upgraded and leaves nothing selected.
func (a *Autoplay) Act(g *Game) (placed, upgraded int) {
	if g.ECS.GameState != component.BuildState {
		return 0, 0
	}
	maxTowers := a.MaxTowers
	if maxTowers <= 0 {
		maxTowers = DefaultMaxTowers
	}
	kind, cost, ok := cheapestTower(g.Library)
	if !ok {
		return 0, 0
	}
	defer g.SelectTower(0)

	for {
		if len(g.ECS.Towers) < maxTowers {
			cell, free := nearestFreeCell(g)
			if free {
				if !g.Ledger.CanAfford(cost) {
					return placed, upgraded
				}
				if _, err := g.PlaceTower(cell, kind); err != nil {
					return placed, upgraded
				}
				placed++
				continue
			}
		}

		weakest := weakestTower(g.ECS.Towers)
		if weakest == nil || !g.Ledger.CanAfford(weakest.UpgradeCost()) {
			return placed, upgraded
		}
		g.SelectTower(weakest.ID)
		if err := g.UpgradeSelected(); err != nil {
			return placed, upgraded
		}
		upgraded++
	}
}

func cheapestTower(lib *defs.Library) (defs.TowerKind, float64, bool) {
	var (
		best     defs.TowerKind
		bestCost = math.Inf(1)
	)
	for _, kind := range defs.TowerKinds {
		def, err := lib.Tower(kind)
		if err != nil {
			continue
		}
		if def.BuildCost < bestCost {
			best, bestCost = kind, def.BuildCost
		}
	}
	return best, bestCost, !math.IsInf(bestCost, 1)
}

// nearestFreeCell scans row-major and keeps the first cell at the smallest
// Manhattan distance from any path cell.
func nearestFreeCell(g *Game) (grid.Cell, bool) {
	var (
		best     grid.Cell
		bestDist = math.MaxInt
	)
	for row := 0; row < g.Grid.Rows; row++ {
		for col := 0; col < g.Grid.Cols; col++ {
			c := grid.Cell{Col: col, Row: row}
			if g.Grid.IsPath(c) || g.ECS.TowerAt(c) != nil {
				continue
			}
			if d := distanceToPath(c, g.Grid.Path); d < bestDist {
				best, bestDist = c, d
			}
		}
	}
	return best, bestDist != math.MaxInt
}

func distanceToPath(c grid.Cell, path []grid.Cell) int {
	d := math.MaxInt
	for _, p := range path {
		d = min(d, abs(c.Col-p.Col)+abs(c.Row-p.Row))
	}
	return d
}

func weakestTower(towers []*component.Tower) *component.Tower {
	var weakest *component.Tower
	for _, t := range towers {
		if weakest == nil || t.Level < weakest.Level {
			weakest = t
		}
	}
	return weakest
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
