package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/pkg/grid"
)

func TestRunnerSerialisesCommands(t *testing.T) {
	g, _ := newTestGame(t, nil, nil)
	r := NewRunner(g, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	var placeErr error
	require.NoError(t, r.Do(ctx, func(g *Game) {
		_, placeErr = g.PlaceTower(grid.Cell{Col: 0, Row: 0}, defs.TowerBasic)
	}))
	require.NoError(t, placeErr)
	require.NoError(t, r.Do(ctx, func(g *Game) { placeErr = g.StartWave() }))
	require.NoError(t, placeErr)

	require.Eventually(t, func() bool {
		s, err := r.Snapshot(ctx)
		return err == nil && len(s.Enemies) > 0
	}, 5*time.Second, 10*time.Millisecond)

	s, err := r.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, component.WaveState, s.Phase)
	assert.Len(t, s.Towers, 1)

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
	}
	assert.Empty(t, g.ECS.Enemies, "closing drops the wave")
}

func TestRunnerDoAfterCancel(t *testing.T) {
	g, _ := newTestGame(t, nil, nil)
	r := NewRunner(g, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Do(ctx, func(*Game) { t.Fatal("must not run") })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerDoAfterRunReturns(t *testing.T) {
	g, _ := newTestGame(t, nil, nil)
	r := NewRunner(g, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
	}

	result := make(chan error, 2)
	go func() { result <- r.Do(context.Background(), func(*Game) { t.Error("must not run") }) }()
	go func() {
		_, err := r.Snapshot(context.Background())
		result <- err
	}()
	for i := 0; i < 2; i++ {
		select {
		case err := <-result:
			assert.ErrorIs(t, err, ErrRunnerStopped)
		case <-time.After(2 * time.Second):
			t.Fatal("call blocked after Run returned")
		}
	}
}
