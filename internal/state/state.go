// internal/state/state.go
package state

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// State интерфейс для всех состояний. deltaTime в секундах.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine owns the current screen and logs every switch.
type StateMachine struct {
	current State
	logger  *slog.Logger
}

// NewStateMachine создаёт машину состояний без начального состояния.
func NewStateMachine(logger *slog.Logger) *StateMachine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &StateMachine{logger: logger.With("component", "states")}
}

// SetState exits the current state, if any, and enters next. Passing the
// current state again re-enters it.
func (sm *StateMachine) SetState(next State) {
	from := name(sm.current)
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if next != nil {
		next.Enter()
	}
	sm.logger.Debug("state changed", "from", from, "to", name(next))
}

// Current возвращает текущее состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние.
func (sm *StateMachine) Update(deltaTime float64) {
	if s := sm.current; s != nil {
		s.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if s := sm.current; s != nil {
		s.Draw(screen)
	}
}

func name(s State) string {
	if s == nil {
		return "none"
	}
	return fmt.Sprintf("%T", s)
}
