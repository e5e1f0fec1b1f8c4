// internal/app/runner.go
package app

import (
	"context"
	"errors"
	"time"
)

// ErrRunnerStopped is returned by Do and Snapshot once Run has returned.
var ErrRunnerStopped = errors.New("runner stopped")

// Runner drives a Game in real time from one goroutine. Every mutation, ticks
// and commands alike, runs on that goroutine, so callers on other goroutines
// never race with the simulation.
type Runner struct {
	game     *Game
	commands chan func(*Game)
	stopped  chan struct{}
	frame    time.Duration
	now      func() time.Time
}

// NewRunner wraps g. frame is the simulation step period; zero uses 16ms.
func NewRunner(g *Game, frame time.Duration) *Runner {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	return &Runner{
		game:     g,
		commands: make(chan func(*Game)),
		stopped:  make(chan struct{}),
		frame:    frame,
		now:      time.Now,
	}
}

// Run steps the game every frame until ctx is cancelled, then closes it.
// A Runner runs once; later calls to Do fail with ErrRunnerStopped.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.frame)
	defer ticker.Stop()
	defer close(r.stopped)
	defer r.game.Close()

	last := r.now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-r.commands:
			cmd(r.game)
		case <-ticker.C:
			now := r.now()
			r.game.Update(now.Sub(last))
			last = now
		}
	}
}

// Do runs fn on the simulation goroutine and waits for it to finish.
func (r *Runner) Do(ctx context.Context, fn func(*Game)) error {
	done := make(chan struct{})
	cmd := func(g *Game) {
		defer close(done)
		fn(g)
	}
	select {
	case r.commands <- cmd:
	case <-r.stopped:
		return ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-r.stopped:
		// fn may have finished in the same frame that Run returned.
		select {
		case <-done:
			return nil
		default:
			return ErrRunnerStopped
		}
	}
}

// Snapshot reads the game state on the simulation goroutine.
func (r *Runner) Snapshot(ctx context.Context) (Snapshot, error) {
	var s Snapshot
	err := r.Do(ctx, func(g *Game) { s = g.Snapshot() })
	return s, err
}
