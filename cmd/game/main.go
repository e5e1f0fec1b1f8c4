// cmd/game/main.go
package main

import (
	"log/slog"
	"os"
	"time"

	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = true // false opens the menu first

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.Load()
	if err != nil {
		slog.Error("failed to load settings", "err", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.LogLevel}))

	lib, err := defs.LoadOrDefault(settings.DefinitionsPath)
	if err != nil {
		logger.Error("failed to load definitions", "path", settings.DefinitionsPath, "err", err)
		os.Exit(1)
	}

	sm := state.NewStateMachine(logger)
	if startFromGame {
		gs, err := state.NewGameState(sm, settings, lib, logger)
		if err != nil {
			logger.Error("failed to create game", "err", err)
			os.Exit(1)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, settings, lib, logger))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Iso Tower Defense")
	if err := ebiten.RunGame(app); err != nil {
		logger.Error("game loop stopped", "err", err)
		os.Exit(1)
	}
}
