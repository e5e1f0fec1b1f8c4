// internal/defs/waves.go
package defs

import "time"

// WaveDefinition is an authored wave: enemy tiers in spawn order and the gap between spawns.
type WaveDefinition struct {
	Enemies    []EnemyKind
	Interval   time.Duration
	IsBossWave bool
}

func defaultWaves() []WaveDefinition {
	b, f, t, boss := EnemyBasic, EnemyFast, EnemyTank, EnemyBoss
	return []WaveDefinition{
		{Enemies: []EnemyKind{b, b, b}, Interval: 1500 * time.Millisecond},
		{Enemies: []EnemyKind{b, b, b, b}, Interval: 1300 * time.Millisecond},
		{Enemies: []EnemyKind{b, b, f, f}, Interval: 1200 * time.Millisecond},
		{Enemies: []EnemyKind{b, b, f, f, b}, Interval: 1100 * time.Millisecond},
		{Enemies: []EnemyKind{boss, b, f, f}, Interval: 2000 * time.Millisecond, IsBossWave: true},
		{Enemies: []EnemyKind{f, f, f, t, b, b}, Interval: 900 * time.Millisecond},
		{Enemies: []EnemyKind{t, t, b, b, f, f}, Interval: 800 * time.Millisecond},
		{Enemies: []EnemyKind{t, f, f, f, b, b, b}, Interval: 750 * time.Millisecond},
		{Enemies: []EnemyKind{t, t, f, f, b, b, b}, Interval: 700 * time.Millisecond},
		{Enemies: []EnemyKind{boss, boss, t, f, f}, Interval: 2200 * time.Millisecond, IsBossWave: true},
	}
}
