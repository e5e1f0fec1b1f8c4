// internal/state/pause_state.go
package state

import (
	"image/color"

	"iso-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the game and draws it dimmed underneath.
type PauseState struct {
	stateMachine *StateMachine
	game         *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{stateMachine: sm, game: game}
}

func (s *PauseState) Enter() {
	s.game.setPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	resume := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		resume = resume || s.game.pauseButton.Contains(x, y)
	}
	if resume {
		s.stateMachine.SetState(s.game)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{A: 128}, false)

	const label = "PAUSED"
	face := basicfont.Face7x13
	w := text.BoundString(face, label).Dx()
	text.Draw(screen, label, face, (config.ScreenWidth-w)/2, config.ScreenHeight/2, color.White)
}

func (s *PauseState) Exit() {
	s.game.setPaused(false)
}
