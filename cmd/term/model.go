// cmd/term/model.go
package main

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"iso-tower-defense/internal/app"
	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/pkg/grid"
)

const frameInterval = 16 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// model adapts a Game to bubbletea: ticks advance the simulation and keys
// map to game commands on the cell under the cursor.
type model struct {
	game     *app.Game
	snap     app.Snapshot
	cursor   grid.Cell
	kind     defs.TowerKind
	message  string
	lastTick time.Time
}

func newModel(g *app.Game) *model {
	return &model{
		game: g,
		snap: g.Snapshot(),
		kind: defs.TowerBasic,
	}
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.advance(time.Time(msg))
		return m, tick()
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	}
	return m, nil
}

func (m *model) advance(now time.Time) {
	if !m.lastTick.IsZero() {
		delta := now.Sub(m.lastTick)
		limit := time.Duration(config.MaxDeltaTime * float64(time.Second))
		m.game.Update(min(delta, limit))
	}
	m.lastTick = now
	m.snap = m.game.Snapshot()
}

func (m *model) handleKey(key string) tea.Cmd {
	m.message = ""
	switch key {
	case "q", "ctrl+c":
		m.game.Close()
		return tea.Quit
	case "up", "k":
		m.moveCursor(0, -1)
	case "down", "j":
		m.moveCursor(0, 1)
	case "left", "h":
		m.moveCursor(-1, 0)
	case "right", "l":
		m.moveCursor(1, 0)
	case "1", "2", "3", "4":
		m.kind = defs.TowerKinds[int(key[0]-'1')]
	case "b":
		if _, err := m.game.PlaceTower(m.cursor, m.kind); err != nil {
			m.report(err)
		}
	case "enter":
		m.game.SelectAt(m.cursor)
	case "esc":
		m.game.SelectTower(0)
	case "n":
		m.report(m.game.StartWave())
	case "p":
		m.game.TogglePause()
	case "tab":
		m.game.CycleSpeed()
	case "u":
		m.report(m.game.UpgradeSelected())
	case "s":
		refund, err := m.game.SellSelected()
		if err == nil {
			m.message = fmt.Sprintf("sold for %.1f", refund)
		}
		m.report(err)
	}
	m.game.SetHighlighted(m.cursor)
	m.snap = m.game.Snapshot()
	return nil
}

func (m *model) moveCursor(dc, dr int) {
	next := m.cursor.Add(grid.Cell{Col: dc, Row: dr})
	if m.game.Grid.InBounds(next) {
		m.cursor = next
	}
}

func (m *model) report(err error) {
	if err != nil && !errors.Is(err, app.ErrNoSelection) {
		m.message = err.Error()
	}
}

func (m *model) ended() bool {
	return m.snap.Phase == component.GameOverState || m.snap.Phase == component.VictoryState
}
