// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/internal/economy"
	"iso-tower-defense/internal/event"
	"iso-tower-defense/internal/types"
	"iso-tower-defense/pkg/grid"
)

var (
	ErrOutOfBounds = errors.New("cell out of bounds")
	ErrOnPath      = errors.New("cell is on the enemy path")
	ErrOccupied    = errors.New("cell already has a tower")
	ErrWrongPhase  = errors.New("action not allowed in this phase")
	ErrNoSelection = errors.New("no tower selected")
)

// CanPlaceTower checks a placement without side effects.
func (g *Game) CanPlaceTower(cell grid.Cell, kind defs.TowerKind) error {
	if g.ECS.GameState != component.BuildState {
		return fmt.Errorf("place tower in %s phase: %w", g.ECS.GameState, ErrWrongPhase)
	}
	def, err := g.Library.Tower(kind)
	if err != nil {
		return err
	}
	if !g.Grid.InBounds(cell) {
		return fmt.Errorf("place at %v: %w", cell, ErrOutOfBounds)
	}
	if g.Grid.IsPath(cell) {
		return fmt.Errorf("place at %v: %w", cell, ErrOnPath)
	}
	if g.ECS.TowerAt(cell) != nil {
		return fmt.Errorf("place at %v: %w", cell, ErrOccupied)
	}
	if !g.Ledger.CanAfford(def.BuildCost) {
		return fmt.Errorf("place %s costing %.0f with %.0f: %w", kind, def.BuildCost, g.Ledger.Balance(), economy.ErrInsufficientFunds)
	}
	return nil
}

// PlaceTower builds a tower on cell. A refused placement changes nothing,
// dispatches PlacementRejected and returns the reason.
func (g *Game) PlaceTower(cell grid.Cell, kind defs.TowerKind) (*component.Tower, error) {
	if err := g.CanPlaceTower(cell, kind); err != nil {
		g.rejectPlacement(cell, kind, err)
		return nil, err
	}
	def, _ := g.Library.Tower(kind)

	x, y := g.Layout.TileCenter(cell)
	tower, err := component.NewTower(g.ECS.NewEntity(), def, cell, component.Position{X: x, Y: y})
	if err != nil {
		g.rejectPlacement(cell, kind, err)
		return nil, err
	}
	if err := g.Ledger.Debit(def.BuildCost); err != nil {
		g.rejectPlacement(cell, kind, err)
		return nil, err
	}
	g.ECS.AddTower(tower)

	g.logger.Info("tower placed", "tower", tower.ID, "kind", kind, "cell", cell.String(), "cost", def.BuildCost, "gold", g.Ledger.Balance())
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: towerInfo(tower, def.BuildCost)})
	return tower, nil
}

func (g *Game) rejectPlacement(cell grid.Cell, kind defs.TowerKind, err error) {
	g.logger.Info("placement rejected", "kind", kind, "cell", cell.String(), "reason", err, "gold", g.Ledger.Balance())
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.PlacementRejected,
		Data: event.Rejection{Cell: cell, Kind: kind, Reason: err},
	})
}

// SelectTower selects the tower with id, deselecting any other. A zero id
// clears the selection.
func (g *Game) SelectTower(id types.EntityID) *component.Tower {
	g.ECS.ClearSelection()
	tower := g.ECS.Tower(id)
	if tower == nil {
		g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSelected})
		return nil
	}
	tower.IsSelected = true
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSelected, Data: towerInfo(tower, 0)})
	return tower
}

// SelectAt selects the tower on cell, or clears the selection.
func (g *Game) SelectAt(cell grid.Cell) *component.Tower {
	if tower := g.ECS.TowerAt(cell); tower != nil {
		return g.SelectTower(tower.ID)
	}
	return g.SelectTower(0)
}

func (g *Game) Selected() *component.Tower {
	return g.ECS.Selected()
}

// HoverStats returns the stats of the tower on cell, if any.
func (g *Game) HoverStats(cell grid.Cell) (component.TowerStats, bool) {
	tower := g.ECS.TowerAt(cell)
	if tower == nil {
		return component.TowerStats{}, false
	}
	return tower.Stats(), true
}

// SetHighlighted marks the hovered tower for renderers. TowerHovered fires
// only when the hovered tower changes.
func (g *Game) SetHighlighted(cell grid.Cell) {
	var hovered *component.Tower
	for _, t := range g.ECS.Towers {
		t.IsHighlighted = t.Cell == cell
		if t.IsHighlighted {
			hovered = t
		}
	}
	var id types.EntityID
	if hovered != nil {
		id = hovered.ID
	}
	if id == g.hovered {
		return
	}
	g.hovered = id
	if hovered == nil {
		g.EventDispatcher.Dispatch(event.Event{Type: event.TowerHovered})
		return
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerHovered, Data: towerInfo(hovered, 0)})
}

// UpgradeSelected upgrades the selected tower, paying from the ledger.
func (g *Game) UpgradeSelected() error {
	tower, err := g.selectedInBuild("upgrade")
	if err != nil {
		g.rejectUpgrade(tower, err)
		return err
	}
	if err := tower.Upgrade(g.Ledger); err != nil {
		g.rejectUpgrade(tower, err)
		return err
	}
	g.logger.Info("tower upgraded", "tower", tower.ID, "kind", tower.Kind, "level", tower.Level, "gold", g.Ledger.Balance())
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: towerInfo(tower, tower.UpgradeCost())})
	return nil
}

func (g *Game) rejectUpgrade(tower *component.Tower, err error) {
	r := event.Rejection{Reason: err}
	if tower != nil {
		r.Cell, r.Kind = tower.Cell, tower.Kind
	}
	g.logger.Info("upgrade rejected", "reason", err, "gold", g.Ledger.Balance())
	g.EventDispatcher.Dispatch(event.Event{Type: event.UpgradeRejected, Data: r})
}

// SellSelected removes the selected tower and refunds part of its cost.
func (g *Game) SellSelected() (float64, error) {
	tower, err := g.selectedInBuild("sell")
	if err != nil {
		return 0, err
	}
	refund := economy.SellRefund(tower.Def.BuildCost, tower.Level, tower.Def.UpgradeCost)
	g.ECS.RemoveTower(tower.ID)
	g.Ledger.Credit(refund)

	g.logger.Info("tower sold", "tower", tower.ID, "kind", tower.Kind, "level", tower.Level, "refund", refund, "gold", g.Ledger.Balance())
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: towerInfo(tower, refund)})
	return refund, nil
}

func (g *Game) selectedInBuild(action string) (*component.Tower, error) {
	tower := g.ECS.Selected()
	if g.ECS.GameState != component.BuildState {
		return tower, fmt.Errorf("%s in %s phase: %w", action, g.ECS.GameState, ErrWrongPhase)
	}
	if tower == nil {
		return nil, fmt.Errorf("%s: %w", action, ErrNoSelection)
	}
	return tower, nil
}

func towerInfo(t *component.Tower, amount float64) event.TowerInfo {
	return event.TowerInfo{ID: t.ID, Cell: t.Cell, Stats: t.Stats(), Amount: amount}
}
