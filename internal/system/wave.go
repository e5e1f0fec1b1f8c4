// internal/system/wave.go
package system

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/internal/entity"
	"iso-tower-defense/internal/event"
)

// ErrNoMoreWaves is returned when the authored script has no wave at the requested index.
var ErrNoMoreWaves = errors.New("wave: no more scripted waves")

// Rand is the randomness procedural waves draw from.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// WaveSystem schedules spawns and walks enemies along the path.
//
// Spawning is driven by Tick with real elapsed time: the time is scaled by the
// current speed multiplier and the next enemy is released once a full
// interval has accumulated. The first enemy therefore appears one interval
// after the wave starts, and the wave stops spawning one interval after the
// last enemy.
type WaveSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	rng             Rand
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
	waypoints       []component.Position

	currentWave int
	paused      bool

	// OnBossWave is called once per boss wave when its anticipation delay starts.
	OnBossWave func()
}

func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, rng Rand, eventDispatcher *event.Dispatcher, waypoints []component.Position, logger *slog.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		lib:             lib,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger.With("system", "wave"),
		waypoints:       waypoints,
	}
}

// CurrentWave is the index of the next wave to start. It advances when a
// wave finishes spawning.
func (s *WaveSystem) CurrentWave() int {
	return s.currentWave
}

// ScriptedWaves is the number of authored waves.
func (s *WaveSystem) ScriptedWaves() int {
	return len(s.lib.Waves)
}

func (s *WaveSystem) SetPaused(paused bool) {
	s.paused = paused
}

func (s *WaveSystem) Paused() bool {
	return s.paused
}

// Start begins the scripted wave at CurrentWave.
func (s *WaveSystem) Start() error {
	return s.SpawnFixedWave(s.currentWave)
}

// SpawnFixedWave begins the authored wave at index.
func (s *WaveSystem) SpawnFixedWave(index int) error {
	if index < 0 || index >= len(s.lib.Waves) {
		return fmt.Errorf("%w: index %d of %d", ErrNoMoreWaves, index, len(s.lib.Waves))
	}
	def := s.lib.Waves[index]
	queue := make([]component.SpawnEntry, 0, len(def.Enemies))
	for _, kind := range def.Enemies {
		base, err := s.lib.Enemy(kind)
		if err != nil {
			return fmt.Errorf("wave %d: %w", index, err)
		}
		queue = append(queue, component.SpawnEntry{
			Kind:   kind,
			Health: base.Health,
			Speed:  base.Speed,
			Damage: base.Damage,
			Bounty: base.Bounty,
		})
	}
	s.begin(&component.Wave{
		Index:      index,
		Queue:      queue,
		Interval:   def.Interval,
		IsBossWave: def.IsBossWave,
	})
	return nil
}

// SpawnRandomWave generates and begins a procedural wave.
func (s *WaveSystem) SpawnRandomWave(waveIndex int) {
	s.begin(s.GenerateWave(waveIndex))
}

// GenerateWave builds a procedural wave. Every fifth wave is a boss wave with
// a short queue led by bosses and a longer interval.
func (s *WaveSystem) GenerateWave(waveIndex int) *component.Wave {
	boss := waveIndex%config.BossWaveEvery == 0 && waveIndex > 0
	w := &component.Wave{
		Index:      waveIndex,
		Interval:   config.RandomWaveInterval,
		IsBossWave: boss,
		Procedural: true,
	}

	if !boss {
		count := s.rng.Intn(waveIndex+5) + waveIndex
		for i := 0; i < count; i++ {
			w.Queue = append(w.Queue, s.scaled(s.randomKind(waveIndex), waveIndex))
		}
		return w
	}

	w.Interval = config.BossWaveInterval
	total := config.MinBossWaveSize + s.rng.Intn(config.BossWaveSizeSpread)
	bosses := min(waveIndex/10+1, config.MaxBosses)
	for i := 0; i < bosses; i++ {
		w.Queue = append(w.Queue, s.scaled(defs.EnemyBoss, waveIndex))
	}
	for i := bosses; i < total; i++ {
		w.Queue = append(w.Queue, s.scaled(s.randomKind(waveIndex), waveIndex))
	}
	return w
}

func (s *WaveSystem) randomKind(waveIndex int) defs.EnemyKind {
	r := s.rng.Float64()
	switch {
	case r < config.FastBand && waveIndex > config.FastUnlockWave:
		return defs.EnemyFast
	case r < config.TankBand && waveIndex > config.TankUnlockWave:
		return defs.EnemyTank
	default:
		return defs.EnemyBasic
	}
}

// scaled applies per-wave scaling to a tier's base stats. Bounty stays constant.
func (s *WaveSystem) scaled(kind defs.EnemyKind, waveIndex int) component.SpawnEntry {
	base := s.lib.Enemies[kind]
	w := float64(waveIndex)
	return component.SpawnEntry{
		Kind:   kind,
		Health: math.Round(base.Health * (1 + config.HealthScalePerWave*w)),
		Speed:  base.Speed,
		Damage: base.Damage + int(math.Floor(w*float64(base.Damage)*config.DamageScalePerWave)),
		Bounty: base.Bounty,
	}
}

func (s *WaveSystem) begin(w *component.Wave) {
	s.ecs.Wave = w
	if w.IsBossWave {
		w.Delay = config.BossWaveDelay
		s.eventDispatcher.Dispatch(event.Event{Type: event.BossWaveIncoming, Data: waveInfo(w)})
		if s.OnBossWave != nil {
			s.OnBossWave()
		}
	}
	s.logger.Info("wave started",
		"wave", w.Index,
		"enemies", len(w.Queue),
		"interval", w.Interval,
		"boss", w.IsBossWave,
		"procedural", w.Procedural)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: waveInfo(w)})
}

// RecheckInterval is how often a real-time host should call Tick for the
// current wave at the given speed.
func (s *WaveSystem) RecheckInterval(speedMultiplier float64) time.Duration {
	interval := config.RandomWaveInterval
	if w := s.ecs.Wave; w != nil {
		interval = w.Interval
	}
	if speedMultiplier <= 0 {
		speedMultiplier = 1
	}
	adjusted := time.Duration(float64(interval) / speedMultiplier)
	return max(config.MinRecheckInterval, min(adjusted/4, config.MaxRecheckInterval))
}

// Tick advances the spawn schedule by a real-time delta. Nothing happens
// while paused; accumulated progress is kept.
func (s *WaveSystem) Tick(delta time.Duration, speedMultiplier float64) {
	if s.paused {
		return
	}
	w := s.ecs.Wave
	if w == nil || w.SpawningDone || delta <= 0 {
		return
	}

	scaled := time.Duration(float64(delta) * speedMultiplier)
	if w.Delay > 0 {
		if scaled < w.Delay {
			w.Delay -= scaled
			return
		}
		scaled -= w.Delay
		w.Delay = 0
	}

	w.Elapsed += scaled
	for !w.SpawningDone && w.Elapsed >= w.Interval {
		w.Elapsed -= w.Interval
		if w.Spawned >= len(w.Queue) {
			w.SpawningDone = true
			s.currentWave++
			s.logger.Debug("wave finished spawning", "wave", w.Index, "spawned", w.Spawned)
			break
		}
		s.spawn(w.Queue[w.Spawned])
		w.Spawned++
	}
}

func (s *WaveSystem) spawn(entry component.SpawnEntry) {
	e := component.NewEnemy(s.ecs.NewEntity(), entry, s.waypoints)
	s.ecs.AddEnemy(e)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: e})
}

// Update advances every active enemy by one step.
func (s *WaveSystem) Update(speedMultiplier float64) {
	for _, e := range s.ecs.Enemies {
		if !e.Alive() {
			continue
		}
		if out := e.Advance(speedMultiplier); out.Kind == component.OutcomeReachedBase {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyReachedBase,
				Data: event.EnemyResolved{ID: e.ID, Kind: e.Kind, Outcome: out},
			})
		}
	}
}

// IsWaveComplete reports whether no enemy is active and spawning has finished.
func (s *WaveSystem) IsWaveComplete() bool {
	if w := s.ecs.Wave; w != nil && !w.SpawningDone {
		return false
	}
	return s.ecs.ActiveEnemies() == 0
}

// Cleanup drops the pending schedule and removes every enemy without
// reporting deaths or arrivals.
func (s *WaveSystem) Cleanup() {
	s.ecs.ClearEnemies()
	s.ecs.Wave = nil
}

func waveInfo(w *component.Wave) event.WaveInfo {
	return event.WaveInfo{Index: w.Index, IsBossWave: w.IsBossWave, Enemies: len(w.Queue)}
}
