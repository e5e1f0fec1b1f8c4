// internal/event/types.go
package event

import (
	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/internal/types"
	"iso-tower-defense/pkg/grid"
)

const (
	EnemySpawned      EventType = "EnemySpawned"      // *component.Enemy
	EnemyKilled       EventType = "EnemyKilled"       // EnemyResolved
	EnemyReachedBase  EventType = "EnemyReachedBase"  // EnemyResolved
	WaveStarted       EventType = "WaveStarted"       // WaveInfo
	WaveEnded         EventType = "WaveEnded"         // WaveInfo
	BossWaveIncoming  EventType = "BossWaveIncoming"  // WaveInfo
	TowerPlaced       EventType = "TowerPlaced"       // TowerInfo
	TowerSold         EventType = "TowerSold"         // TowerInfo
	TowerUpgraded     EventType = "TowerUpgraded"     // TowerInfo
	TowerSelected     EventType = "TowerSelected"     // TowerInfo, or nil when cleared
	TowerHovered      EventType = "TowerHovered"      // TowerInfo, or nil when cleared
	PlacementRejected EventType = "PlacementRejected" // Rejection
	UpgradeRejected   EventType = "UpgradeRejected"   // Rejection
	GameOver          EventType = "GameOver"          // WaveInfo
	Victory           EventType = "Victory"           // WaveInfo
)

// EnemyResolved reports how an enemy left play.
type EnemyResolved struct {
	ID      types.EntityID
	Kind    defs.EnemyKind
	Outcome component.EnemyOutcome
}

// WaveInfo identifies a wave.
type WaveInfo struct {
	Index      int
	IsBossWave bool
	Enemies    int
}

// TowerInfo describes a tower action. Amount is the cost paid or refund received.
type TowerInfo struct {
	ID     types.EntityID
	Cell   grid.Cell
	Stats  component.TowerStats
	Amount float64
}

// Rejection explains a refused player action.
type Rejection struct {
	Cell   grid.Cell
	Kind   defs.TowerKind
	Reason error
}
