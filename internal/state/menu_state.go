// internal/state/menu_state.go
package state

import (
	"log/slog"

	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState waits for the player to start a run.
type MenuState struct {
	sm       *StateMachine
	settings *config.Settings
	lib      *defs.Library
	logger   *slog.Logger
	lastErr  error
}

func NewMenuState(sm *StateMachine, settings *config.Settings, lib *defs.Library, logger *slog.Logger) *MenuState {
	return &MenuState{sm: sm, settings: settings, lib: lib, logger: logger}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) && !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	gs, err := NewGameState(m.sm, m.settings, m.lib, m.logger)
	if err != nil {
		m.lastErr = err
		m.logger.Error("failed to start game", "err", err)
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	lines := []string{
		"ISO TOWER DEFENSE",
		"",
		"mode: " + string(m.settings.Mode),
		"press SPACE to start",
	}
	if m.lastErr != nil {
		lines = append(lines, "", m.lastErr.Error())
	}
	y := config.ScreenHeight/2 - len(lines)*10
	for _, line := range lines {
		w := text.BoundString(face, line).Dx()
		text.Draw(screen, line, face, (config.ScreenWidth-w)/2, y, config.TextLightColor)
		y += 20
	}
}

func (m *MenuState) Exit() {}
