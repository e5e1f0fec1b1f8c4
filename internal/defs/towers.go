// internal/defs/towers.go
package defs

import "image/color"

// TowerDefinition holds the level-independent stats of a tower archetype.
// Range and Cooldown are the level-0 bases the scaling formulas start from.
type TowerDefinition struct {
	Kind        TowerKind  `yaml:"kind"`
	Damage      float64    `yaml:"damage"`
	Range       float64    `yaml:"range"`
	Cooldown    float64    `yaml:"cooldown"` // simulation steps at 1x
	UpgradeCost float64    `yaml:"upgrade_cost"`
	BuildCost   float64    `yaml:"build_cost"`
	Strategy    Strategy   `yaml:"strategy"`
	Color       color.RGBA `yaml:"-"`
}

func defaultTowers() map[TowerKind]TowerDefinition {
	return map[TowerKind]TowerDefinition{
		TowerBasic: {
			Kind: TowerBasic, Damage: 8, Range: 100, Cooldown: 50,
			UpgradeCost: 75, BuildCost: 50, Strategy: StrategyFirst,
			Color: color.RGBA{0x33, 0x99, 0xff, 0xff},
		},
		TowerSniper: {
			Kind: TowerSniper, Damage: 15, Range: 200, Cooldown: 100,
			UpgradeCost: 110, BuildCost: 80, Strategy: StrategyStrongest,
			Color: color.RGBA{0xff, 0xcc, 0x00, 0xff},
		},
		TowerRapid: {
			Kind: TowerRapid, Damage: 3, Range: 80, Cooldown: 15,
			UpgradeCost: 85, BuildCost: 65, Strategy: StrategyClosest,
			Color: color.RGBA{0x00, 0xff, 0x99, 0xff},
		},
		TowerSplash: {
			Kind: TowerSplash, Damage: 5, Range: 110, Cooldown: 70,
			UpgradeCost: 90, BuildCost: 75, Strategy: StrategyFirst,
			Color: color.RGBA{0xff, 0x33, 0x33, 0xff},
		},
	}
}
