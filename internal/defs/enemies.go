// internal/defs/enemies.go
package defs

// EnemyDefinition holds the base stats of an enemy tier.
type EnemyDefinition struct {
	Kind   EnemyKind `yaml:"kind"`
	Health float64   `yaml:"health"`
	Speed  float64   `yaml:"speed"`
	Damage int       `yaml:"damage"` // base health removed on arrival
	Bounty float64   `yaml:"bounty"`
}

func defaultEnemies() map[EnemyKind]EnemyDefinition {
	return map[EnemyKind]EnemyDefinition{
		EnemyBasic: {Kind: EnemyBasic, Health: 80, Speed: 0.65, Damage: 1, Bounty: 15},
		EnemyFast:  {Kind: EnemyFast, Health: 45, Speed: 1.3, Damage: 1, Bounty: 10},
		EnemyTank:  {Kind: EnemyTank, Health: 280, Speed: 0.35, Damage: 3, Bounty: 25},
		EnemyBoss:  {Kind: EnemyBoss, Health: 800, Speed: 0.4, Damage: 5, Bounty: 100},
	}
}
