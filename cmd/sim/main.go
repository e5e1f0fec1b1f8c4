// cmd/sim/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"iso-tower-defense/internal/app"
	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
)

const frame = 16 * time.Millisecond

func main() {
	var (
		maxWaves  = flag.Int("waves", 50, "stop after this many waves")
		maxTowers = flag.Int("towers", app.DefaultMaxTowers, "towers the bot builds before it only upgrades")
		realtime  = flag.Bool("realtime", false, "run on the wall clock instead of as fast as possible")
	)
	flag.Parse()

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
	g, err := app.NewGame(settings, lib, logger)
	if err != nil {
		logger.Error("failed to create game", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot := &app.Autoplay{MaxTowers: *maxTowers}
	var final app.Snapshot
	if *realtime {
		final, err = runRealtime(ctx, g, bot, *maxWaves)
	} else {
		final, err = runFast(ctx, g, bot, *maxWaves)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("simulation failed", "err", err)
		os.Exit(1)
	}
	logger.Info("simulation finished",
		"phase", final.Phase,
		"wave", final.Wave,
		"gold", final.Balance,
		"base_health", final.BaseHealth,
		"towers", len(final.Towers))
}

// runFast steps fixed frames back to back.
func runFast(ctx context.Context, g *app.Game, bot *app.Autoplay, maxWaves int) (app.Snapshot, error) {
	defer g.Close()
	for waves := 0; waves < maxWaves; waves++ {
		if g.ECS.GameState != component.BuildState {
			break
		}
		bot.Act(g)
		if err := g.StartWave(); err != nil {
			return g.Snapshot(), err
		}
		for g.ECS.GameState == component.WaveState {
			if err := ctx.Err(); err != nil {
				return g.Snapshot(), err
			}
			g.Update(frame)
		}
	}
	return g.Snapshot(), nil
}

// runRealtime drives the game through a Runner and polls it between waves.
func runRealtime(ctx context.Context, g *app.Game, bot *app.Autoplay, maxWaves int) (app.Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runner := app.NewRunner(g, frame)
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	var (
		snap  app.Snapshot
		err   error
		waves int
	)
	poll := time.NewTicker(100 * time.Millisecond)
	defer poll.Stop()
loop:
	for {
		if snap, err = runner.Snapshot(ctx); err != nil {
			break
		}
		switch snap.Phase {
		case component.GameOverState, component.VictoryState:
			break loop
		case component.BuildState:
			if waves >= maxWaves {
				break loop
			}
			var startErr error
			err = runner.Do(ctx, func(g *app.Game) {
				bot.Act(g)
				startErr = g.StartWave()
			})
			if err == nil {
				err = startErr
			}
			if err != nil {
				break loop
			}
			waves++
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break loop
		case <-poll.C:
		}
	}

	cancel()
	<-done
	return snap, err
}
