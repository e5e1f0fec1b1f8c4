// internal/defs/types.go
package defs

import "errors"

// ErrUnknownKind is returned for tower, enemy or strategy names outside the tables.
var ErrUnknownKind = errors.New("defs: unknown kind")

// EnemyKind is the tier of a mobile unit.
type EnemyKind string

const (
	EnemyBasic EnemyKind = "basic"
	EnemyFast  EnemyKind = "fast"
	EnemyTank  EnemyKind = "tank"
	EnemyBoss  EnemyKind = "boss"
)

// TowerKind is a defense archetype.
type TowerKind string

const (
	TowerBasic  TowerKind = "basic"
	TowerSniper TowerKind = "sniper"
	TowerRapid  TowerKind = "rapid"
	TowerSplash TowerKind = "splash"
)

// TowerKinds lists the archetypes in menu order.
var TowerKinds = []TowerKind{TowerBasic, TowerSniper, TowerRapid, TowerSplash}

// Strategy names how a tower picks among candidates in range.
type Strategy string

const (
	StrategyFirst     Strategy = "first"
	StrategyClosest   Strategy = "closest"
	StrategyStrongest Strategy = "strongest"
)
