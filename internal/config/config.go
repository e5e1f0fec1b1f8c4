// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	MaxDeltaTime = 0.06 // seconds; longer frames are clamped

	// Level
	ScriptedCols          = 10
	ScriptedRows          = 6
	InfinityMinCols       = 10
	InfinityColsSpread    = 10
	InfinityMinRows       = 8
	InfinityRowsSpread    = 8
	MaxGenerationAttempts = 5

	// Economy
	StartingGold = 100
	BaseHealth   = 20
	RefundFactor = 0.7

	// Enemy movement
	ReferencePathLength = 7
	MinPathFactor       = 0.5
	MaxPathFactor       = 1.5
	PathFactorMinPoints = 3 // paths with this many waypoints or fewer are not normalised

	// Tower scaling, per level
	RangePerLevel    = 10.0
	CooldownPerLevel = 5.0
	DamagePerLevel   = 2.0
	MinCooldown      = 10.0

	ProjectileSpeed = 2.0 // world units per step at 1x

	// Procedural waves
	RandomWaveInterval = 500 * time.Millisecond
	BossWaveInterval   = 2000 * time.Millisecond
	BossWaveDelay      = 2000 * time.Millisecond
	BossWaveEvery      = 5
	MinBossWaveSize    = 3
	BossWaveSizeSpread = 3 // 3..5
	MaxBosses          = 3
	HealthScalePerWave = 0.1
	DamageScalePerWave = 0.05
	FastUnlockWave     = 1
	TankUnlockWave     = 2
	FastBand           = 0.3
	TankBand           = 0.6

	// Spawn polling bounds for real-time hosts
	MinRecheckInterval = 16 * time.Millisecond
	MaxRecheckInterval = 100 * time.Millisecond
)

// SpeedSteps are the multipliers the speed control cycles through.
var SpeedSteps = []float64{1, 2, 4}

// DefaultCorners is the authored path used by scripted levels without a custom layout.
var DefaultCorners = [][2]int{{0, 1}, {1, 1}, {2, 1}, {2, 4}, {7, 4}, {7, 1}, {9, 1}}

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	GrassColor        = color.RGBA{34, 139, 34, 255}
	PathColor         = color.RGBA{127, 110, 78, 255}
	TileStrokeColor   = color.RGBA{221, 221, 221, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	HighlightColor    = color.RGBA{255, 255, 0, 255}
	HealthBarBg       = color.RGBA{0, 0, 0, 255}
	HealthBarFill     = color.RGBA{0, 255, 0, 255}
	BuildStateColor   = color.RGBA{70, 130, 180, 220}
	WaveStateColor    = color.RGBA{220, 60, 60, 220}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},
		color.RGBA{220, 60, 60, 220},
		color.RGBA{194, 178, 128, 255},
	}
)
