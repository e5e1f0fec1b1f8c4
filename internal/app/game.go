// internal/app/game.go
package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/internal/economy"
	"iso-tower-defense/internal/entity"
	"iso-tower-defense/internal/event"
	"iso-tower-defense/internal/system"
	"iso-tower-defense/internal/types"
	"iso-tower-defense/internal/utils"
	"iso-tower-defense/pkg/grid"
)

// Game holds the main game state and logic. It is not safe for concurrent
// use; wrap it in a Runner when several goroutines drive it.
type Game struct {
	Settings         *config.Settings
	Library          *defs.Library
	Grid             *grid.Grid
	Layout           grid.Layout
	ECS              *entity.ECS
	Ledger           *economy.Ledger
	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	StateSystem      *system.StateSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	RunID            uuid.UUID
	SpeedMultiplier  float64

	logger   *slog.Logger
	isPaused bool
	steps    uint64
	hovered  types.EntityID
}

// NewGame builds a level and wires the systems. A nil library uses the
// built-in tables.
func NewGame(settings *config.Settings, lib *defs.Library, logger *slog.Logger) (*Game, error) {
	if settings == nil {
		settings = config.Defaults()
	}
	if lib == nil {
		lib = defs.DefaultLibrary()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	rng := utils.NewPRNGService(settings.Seed)
	runID := uuid.New()
	logger = logger.With("run", runID.String())

	level, err := buildLevel(settings, rng, logger)
	if err != nil {
		return nil, err
	}
	layout := grid.Layout{Cols: level.Cols, Rows: level.Rows}
	waypoints := make([]component.Position, 0, len(level.Waypoints))
	for _, c := range level.Waypoints {
		x, y := layout.Waypoint(c)
		waypoints = append(waypoints, component.Position{X: x, Y: y})
	}

	speed := settings.Speed
	if !config.ValidSpeed(speed) {
		speed = config.SpeedSteps[0]
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Settings:         settings,
		Library:          lib,
		Grid:             level,
		Layout:           layout,
		ECS:              ecs,
		Ledger:           economy.NewLedger(settings.StartingGold),
		WaveSystem:       system.NewWaveSystem(ecs, lib, rng, eventDispatcher, waypoints, logger),
		CombatSystem:     system.NewCombatSystem(ecs),
		ProjectileSystem: system.NewProjectileSystem(ecs, eventDispatcher),
		StateSystem:      system.NewStateSystem(ecs, eventDispatcher, settings.BaseHealth, logger),
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		RunID:            runID,
		SpeedMultiplier:  speed,
		logger:           logger,
	}

	eventDispatcher.Subscribe(event.EnemyKilled, g.Ledger)
	eventDispatcher.SubscribeAll(&GameEventListener{game: g},
		event.EnemyKilled, event.BossWaveIncoming, event.WaveEnded)

	logger.Info("game created",
		"mode", settings.Mode,
		"seed", rng.Seed(),
		"cols", level.Cols,
		"rows", level.Rows,
		"path_cells", len(level.Path),
		"gold", settings.StartingGold)
	return g, nil
}

// buildLevel produces the grid for the configured mode. Procedural levels are
// regenerated a few times before giving up.
func buildLevel(settings *config.Settings, rng *utils.PRNGService, logger *slog.Logger) (*grid.Grid, error) {
	if settings.Mode != config.ModeInfinity {
		cols, rows := settings.Cols, settings.Rows
		if cols == 0 {
			cols = config.ScriptedCols
		}
		if rows == 0 {
			rows = config.ScriptedRows
		}
		corners := settings.Corners
		if len(corners) == 0 {
			corners = config.DefaultCorners
		}
		cells := make([]grid.Cell, 0, len(corners))
		for _, c := range corners {
			cells = append(cells, grid.Cell{Col: c[0], Row: c[1]})
		}
		level, err := grid.NewFromCorners(cols, rows, cells)
		if err != nil {
			return nil, fmt.Errorf("build scripted level: %w", err)
		}
		return level, nil
	}

	var lastErr error
	for attempt := 1; attempt <= config.MaxGenerationAttempts; attempt++ {
		cols, rows := settings.Cols, settings.Rows
		if cols == 0 {
			cols = rng.IntRange(config.InfinityMinCols, config.InfinityColsSpread)
		}
		if rows == 0 {
			rows = rng.IntRange(config.InfinityMinRows, config.InfinityRowsSpread)
		}
		level, err := grid.Generate(cols, rows, rng)
		if err == nil {
			return level, nil
		}
		lastErr = err
		logger.Warn("level generation failed", "attempt", attempt, "cols", cols, "rows", rows, "err", err)
	}
	return nil, fmt.Errorf("generate level after %d attempts: %w", config.MaxGenerationAttempts, lastErr)
}

// GameEventListener reacts to events that matter for the main loop.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if r, ok := e.Data.(event.EnemyResolved); ok {
			l.game.logger.Debug("enemy killed", "enemy", r.ID, "kind", r.Kind, "bounty", r.Outcome.Bounty)
		}
	case event.BossWaveIncoming:
		if w, ok := e.Data.(event.WaveInfo); ok {
			l.game.logger.Info("boss wave incoming", "wave", w.Index, "enemies", w.Enemies)
		}
	case event.WaveEnded:
		if w, ok := e.Data.(event.WaveInfo); ok {
			l.game.logger.Info("wave ended", "wave", w.Index, "gold", l.game.Ledger.Balance(), "base_health", l.game.StateSystem.BaseHealth())
		}
	}
}

// Update advances the game by one frame: the spawn schedule by delta, then one
// simulation step. Nothing moves outside the wave phase or while paused.
func (g *Game) Update(delta time.Duration) {
	if g.isPaused || g.ECS.GameState != component.WaveState {
		return
	}
	g.WaveSystem.Tick(delta, g.SpeedMultiplier)
	g.Step()
}

// Step runs one simulation step in the fixed order: enemies, towers,
// projectiles. Destroyed entities are swept afterwards and the phase is
// re-evaluated.
func (g *Game) Step() {
	if g.isPaused || g.ECS.GameState != component.WaveState {
		return
	}
	speed := g.SpeedMultiplier
	g.WaveSystem.Update(speed)
	g.CombatSystem.Update(speed)
	g.ProjectileSystem.Update(speed)
	g.ECS.Sweep()
	g.steps++

	info := g.waveInfo()
	switch {
	case g.StateSystem.BaseHealth() <= 0:
		g.WaveSystem.Cleanup()
		g.StateSystem.SwitchToGameOver(info)
	case g.WaveSystem.IsWaveComplete():
		if g.Settings.Mode != config.ModeInfinity && g.WaveSystem.CurrentWave() >= g.WaveSystem.ScriptedWaves() {
			g.StateSystem.SwitchToVictory(info)
			return
		}
		g.StateSystem.SwitchToBuildState(info)
	}
}

func (g *Game) waveInfo() event.WaveInfo {
	if w := g.ECS.Wave; w != nil {
		return event.WaveInfo{Index: w.Index, IsBossWave: w.IsBossWave, Enemies: len(w.Queue)}
	}
	return event.WaveInfo{Index: g.WaveSystem.CurrentWave()}
}

// StartWave leaves the build phase and starts the next wave.
func (g *Game) StartWave() error {
	if g.ECS.GameState != component.BuildState {
		return fmt.Errorf("start wave in %s phase: %w", g.ECS.GameState, ErrWrongPhase)
	}
	if g.Settings.Mode == config.ModeInfinity {
		g.WaveSystem.SpawnRandomWave(g.WaveSystem.CurrentWave())
	} else if err := g.WaveSystem.Start(); err != nil {
		return err
	}
	g.StateSystem.SwitchToWaveState()
	return nil
}

// TogglePause flips the pause flag and returns the new state.
func (g *Game) TogglePause() bool {
	g.SetPaused(!g.isPaused)
	return g.isPaused
}

func (g *Game) SetPaused(paused bool) {
	g.isPaused = paused
	g.WaveSystem.SetPaused(paused)
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

// SetSpeed changes the multiplier; it applies from the next poll and step.
func (g *Game) SetSpeed(m float64) error {
	if !config.ValidSpeed(m) {
		return fmt.Errorf("speed %v: must be one of %v", m, config.SpeedSteps)
	}
	g.SpeedMultiplier = m
	return nil
}

// CycleSpeed moves to the next speed step, wrapping around.
func (g *Game) CycleSpeed() float64 {
	next := config.SpeedSteps[0]
	for i, step := range config.SpeedSteps {
		if step == g.SpeedMultiplier {
			next = config.SpeedSteps[(i+1)%len(config.SpeedSteps)]
			break
		}
	}
	g.SpeedMultiplier = next
	return next
}

// PollInterval is how often a real-time host should call Update.
func (g *Game) PollInterval() time.Duration {
	return g.WaveSystem.RecheckInterval(g.SpeedMultiplier)
}

// WaveNumber is the 1-based wave shown to the player.
func (g *Game) WaveNumber() int {
	return g.WaveSystem.CurrentWave() + 1
}

// Close tears the simulation down mid-wave: the schedule is cancelled and all
// enemies and projectiles are dropped silently.
func (g *Game) Close() {
	g.WaveSystem.Cleanup()
	g.ECS.ClearProjectiles()
	g.logger.Info("game closed", "steps", g.steps, "wave", g.WaveNumber())
}
