package main

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iso-tower-defense/internal/app"
	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/pkg/grid"
)

func newTestModel(t *testing.T) *model {
	t.Helper()
	s := config.Defaults()
	s.Seed = 1
	g, err := app.NewGame(s, nil, nil)
	require.NoError(t, err)
	return newModel(g)
}

func press(m *model, keys ...string) {
	for _, k := range keys {
		m.handleKey(k)
	}
}

func TestCursorStaysOnGrid(t *testing.T) {
	m := newTestModel(t)
	press(m, "up", "left")
	assert.Equal(t, grid.Cell{}, m.cursor)

	for i := 0; i < 20; i++ {
		press(m, "right", "down")
	}
	assert.Equal(t, grid.Cell{Col: config.ScriptedCols - 1, Row: config.ScriptedRows - 1}, m.cursor)

	press(m, "k", "h")
	assert.Equal(t, grid.Cell{Col: config.ScriptedCols - 2, Row: config.ScriptedRows - 2}, m.cursor)
}

func TestBuildSelectAndSell(t *testing.T) {
	m := newTestModel(t)
	press(m, "2", "b")
	require.Len(t, m.snap.Towers, 1)
	assert.Equal(t, defs.TowerSniper, m.snap.Towers[0].Kind)
	assert.Equal(t, 20.0, m.snap.Balance)

	press(m, "enter")
	require.NotNil(t, m.snap.Selected)
	assert.Contains(t, m.View(), "damage")

	press(m, "s")
	assert.Empty(t, m.snap.Towers)
	assert.Equal(t, "sold for 56.0", m.message)
}

func TestRejectedPlacementShowsReason(t *testing.T) {
	m := newTestModel(t)
	press(m, "down", "b") // (0,1) is the path start
	assert.Empty(t, m.snap.Towers)
	assert.Contains(t, m.message, "path")
}

func TestWaveKeysAndTicks(t *testing.T) {
	m := newTestModel(t)
	press(m, "n")
	assert.Equal(t, component.WaveState, m.snap.Phase)

	press(m, "tab")
	assert.Equal(t, 2.0, m.snap.Speed)
	press(m, "p")
	assert.True(t, m.snap.Paused)
	press(m, "p")

	start := time.Unix(0, 0)
	for i := 0; i <= 200; i++ {
		_, cmd := m.Update(tickMsg(start.Add(time.Duration(i) * frameInterval)))
		assert.NotNil(t, cmd)
	}
	assert.NotEmpty(t, m.snap.Enemies)
	assert.True(t, strings.Contains(m.board(), "o"), "basic enemy glyph on the board")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	cmd := m.handleKey("q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
