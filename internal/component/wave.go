// internal/component/wave.go
package component

import (
	"time"

	"iso-tower-defense/internal/defs"
)

// SpawnEntry carries the stats an enemy is spawned with. Authored waves use
// the base table; procedural waves scale them by wave index.
type SpawnEntry struct {
	Kind   defs.EnemyKind
	Health float64
	Speed  float64
	Damage int
	Bounty float64
}

// Wave is the spawn state of the wave in progress.
type Wave struct {
	Index      int
	Queue      []SpawnEntry
	Interval   time.Duration
	IsBossWave bool
	Procedural bool

	// Spawned counts entries dispatched so far.
	Spawned int
	// Elapsed is scaled time accumulated since the last dispatch.
	Elapsed time.Duration
	// Delay is the remaining boss anticipation before the spawn cadence starts.
	Delay time.Duration
	// SpawningDone is set once the queue is exhausted.
	SpawningDone bool
}

// Remaining is the number of queued entries not yet spawned.
func (w *Wave) Remaining() int {
	return len(w.Queue) - w.Spawned
}
