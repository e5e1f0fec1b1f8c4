// internal/component/tower.go
package component

import (
	"fmt"
	"math"

	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/internal/types"
	"iso-tower-defense/pkg/grid"
)

// Wallet is what a tower needs from the economy to pay for an upgrade.
type Wallet interface {
	Debit(amount float64) error
}

// ProjectileKind selects projectile visuals; one per tower archetype.
type ProjectileKind int

const (
	ProjectileBasic ProjectileKind = iota
	ProjectileSniper
	ProjectileRapid
	ProjectileSplash
)

// ProjectileKindFor maps an archetype to its projectile.
func ProjectileKindFor(kind defs.TowerKind) ProjectileKind {
	switch kind {
	case defs.TowerSniper:
		return ProjectileSniper
	case defs.TowerRapid:
		return ProjectileRapid
	case defs.TowerSplash:
		return ProjectileSplash
	default:
		return ProjectileBasic
	}
}

// Shot is a request to spawn one projectile.
type Shot struct {
	Kind   ProjectileKind
	Origin Position
	Target *Enemy
	Damage float64
}

// firePattern turns a selected target into shots.
type firePattern interface {
	fire(t *Tower, target *Enemy, candidates []*Enemy) []Shot
}

// singleShot fires one projectile at the selected target.
type singleShot struct{}

func (singleShot) fire(t *Tower, target *Enemy, _ []*Enemy) []Shot {
	return []Shot{t.shotAt(target)}
}

// volley fires one projectile at every live candidate, in range or not.
type volley struct{}

func (volley) fire(t *Tower, _ *Enemy, candidates []*Enemy) []Shot {
	shots := make([]Shot, 0, len(candidates))
	for _, e := range candidates {
		if !e.Alive() {
			continue
		}
		shots = append(shots, t.shotAt(e))
	}
	return shots
}

// TowerStats is the hover/selection view of a tower.
type TowerStats struct {
	Type        defs.TowerKind
	Level       int
	Range       float64
	Cooldown    float64
	Damage      float64
	UpgradeCost float64
}

// Tower is a placed defense unit.
type Tower struct {
	ID       types.EntityID
	Kind     defs.TowerKind
	Def      defs.TowerDefinition
	Cell     grid.Cell
	Position Position
	Level    int

	Range     float64
	Cooldown  float64
	Damage    float64
	FireTimer float64

	IsSelected    bool
	IsHighlighted bool

	strategy   TargetStrategy
	pattern    firePattern
	projectile ProjectileKind
}

// NewTower builds a level 1 tower from its archetype.
func NewTower(id types.EntityID, def defs.TowerDefinition, cell grid.Cell, pos Position) (*Tower, error) {
	strategy, err := StrategyFor(def.Strategy)
	if err != nil {
		return nil, fmt.Errorf("tower %s: %w", def.Kind, err)
	}
	var pattern firePattern = singleShot{}
	if def.Kind == defs.TowerSplash {
		pattern = volley{}
	}
	t := &Tower{
		ID:         id,
		Kind:       def.Kind,
		Def:        def,
		Cell:       cell,
		Position:   pos,
		Level:      1,
		strategy:   strategy,
		pattern:    pattern,
		projectile: ProjectileKindFor(def.Kind),
	}
	t.applyLevel()
	return t, nil
}

func (t *Tower) applyLevel() {
	lvl := float64(t.Level)
	t.Range = t.Def.Range + lvl*config.RangePerLevel
	t.Cooldown = math.Max(config.MinCooldown, t.Def.Cooldown-lvl*config.CooldownPerLevel)
	t.Damage = t.Def.Damage + lvl*config.DamagePerLevel
}

// UpgradeCost is the flat per-archetype price of the next level.
func (t *Tower) UpgradeCost() float64 {
	return t.Def.UpgradeCost
}

// Upgrade pays the upgrade cost from w and raises the level by one.
// On failure the tower is unchanged.
func (t *Tower) Upgrade(w Wallet) error {
	if err := w.Debit(t.UpgradeCost()); err != nil {
		return fmt.Errorf("upgrade %s to level %d: %w", t.Kind, t.Level+1, err)
	}
	t.Level++
	t.applyLevel()
	return nil
}

// Investment is the cumulative investment in the tower: build cost plus every upgrade paid.
func (t *Tower) Investment() float64 {
	return t.Def.BuildCost + float64(t.Level-1)*t.Def.UpgradeCost
}

// Stats returns the hover view.
func (t *Tower) Stats() TowerStats {
	return TowerStats{
		Type:        t.Kind,
		Level:       t.Level,
		Range:       t.Range,
		Cooldown:    t.Cooldown,
		Damage:      t.Damage,
		UpgradeCost: t.UpgradeCost(),
	}
}

// Target returns the enemy the tower's strategy picks among live candidates in range.
func (t *Tower) Target(candidates []*Enemy) *Enemy {
	return t.strategy.Select(t.Position, InRange(t.Position, t.Range, candidates))
}

// Update runs one simulation step: cool down, or pick a target and fire.
// When no target is in range the cooldown stays expired and nothing is fired.
func (t *Tower) Update(candidates []*Enemy, speedMultiplier float64) []Shot {
	if t.FireTimer > 0 {
		t.FireTimer -= speedMultiplier
		return nil
	}
	target := t.Target(candidates)
	if target == nil {
		return nil
	}
	t.FireTimer = t.Cooldown
	return t.pattern.fire(t, target, candidates)
}

func (t *Tower) shotAt(e *Enemy) Shot {
	return Shot{Kind: t.projectile, Origin: t.Position, Target: e, Damage: t.Damage}
}
