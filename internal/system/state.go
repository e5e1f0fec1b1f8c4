// internal/system/state.go
package system

import (
	"log/slog"

	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/entity"
	"iso-tower-defense/internal/event"
)

// StateSystem owns the build/wave/end phase and the base health.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
	baseHealth      int
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, baseHealth int, logger *slog.Logger) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		logger:          logger.With("system", "state"),
		baseHealth:      baseHealth,
	}
	eventDispatcher.Subscribe(event.EnemyReachedBase, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyReachedBase {
		return
	}
	r, ok := e.Data.(event.EnemyResolved)
	if !ok {
		return
	}
	s.baseHealth = max(0, s.baseHealth-r.Outcome.Damage)
	s.logger.Debug("enemy reached base", "enemy", r.ID, "kind", r.Kind, "damage", r.Outcome.Damage, "base_health", s.baseHealth)
}

func (s *StateSystem) BaseHealth() int {
	return s.baseHealth
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}

// Ended reports whether the game is over, lost or won.
func (s *StateSystem) Ended() bool {
	return s.ecs.GameState == component.GameOverState || s.ecs.GameState == component.VictoryState
}

func (s *StateSystem) SwitchToWaveState() {
	s.ecs.GameState = component.WaveState
	s.ecs.ClearSelection()
}

// SwitchToBuildState ends a wave: leftover projectiles are dropped.
func (s *StateSystem) SwitchToBuildState(info event.WaveInfo) {
	s.ecs.GameState = component.BuildState
	s.ecs.ClearProjectiles()
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: info})
}

func (s *StateSystem) SwitchToGameOver(info event.WaveInfo) {
	s.ecs.GameState = component.GameOverState
	s.logger.Info("game over", "wave", info.Index)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: info})
}

func (s *StateSystem) SwitchToVictory(info event.WaveInfo) {
	s.ecs.GameState = component.VictoryState
	s.ecs.ClearProjectiles()
	s.logger.Info("victory", "waves", info.Index+1)
	s.eventDispatcher.Dispatch(event.Event{Type: event.Victory, Data: info})
}
