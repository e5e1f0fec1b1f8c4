// cmd/term/view.go
package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"iso-tower-defense/internal/app"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/pkg/grid"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	bossStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	grassStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))
	enemyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	msgStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var enemyGlyph = map[defs.EnemyKind]rune{
	defs.EnemyBasic: 'o',
	defs.EnemyFast:  '>',
	defs.EnemyTank:  '#',
	defs.EnemyBoss:  '@',
}

var towerGlyph = map[defs.TowerKind]rune{
	defs.TowerBasic:  'B',
	defs.TowerSniper: 'N',
	defs.TowerRapid:  'R',
	defs.TowerSplash: 'X',
}

func (m *model) View() string {
	s := m.snap
	var b strings.Builder

	header := titleStyle.Render(fmt.Sprintf("Wave %d", s.Wave))
	if s.BossWave {
		header += "  " + bossStyle.Render("BOSS")
	}
	fmt.Fprintf(&b, "%s   gold %.1f   base %d   %s   x%g", header, s.Balance, s.BaseHealth, s.Phase, s.Speed)
	if s.Paused {
		b.WriteString("   PAUSED")
	}
	b.WriteString("\n")

	b.WriteString(boardStyle.Render(m.board()))
	b.WriteString("\n")

	if sel := s.Selected; sel != nil {
		fmt.Fprintf(&b, "%s L%d  range %.0f  cooldown %.0f  damage %.0f  upgrade %.0f\n",
			sel.Type, sel.Level, sel.Range, sel.Cooldown, sel.Damage, sel.UpgradeCost)
	} else if stats, ok := m.game.HoverStats(m.cursor); ok {
		fmt.Fprintf(&b, "%s L%d  range %.0f\n", stats.Type, stats.Level, stats.Range)
	} else {
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(msgStyle.Render(m.message))
	}
	b.WriteString("\n")
	if m.ended() {
		b.WriteString(bossStyle.Render(strings.ToUpper(s.Phase.String())) + "  press q to quit\n")
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"arrows move  1-4 kind (%s)  b build  enter select  u upgrade  s sell  n next wave  p pause  tab speed  q quit", m.kind)))
	return b.String()
}

// board draws one glyph per cell; enemies are placed on the cell their
// position projects back to.
func (m *model) board() string {
	s := m.snap
	cells := make([][]string, s.Rows)
	for row := range cells {
		cells[row] = make([]string, s.Cols)
		for col := range cells[row] {
			cells[row][col] = grassStyle.Render(".")
		}
	}
	set := func(c grid.Cell, glyph string) {
		if c.InBounds(s.Cols, s.Rows) {
			cells[c.Row][c.Col] = glyph
		}
	}

	for i, c := range s.Path {
		glyph := "="
		switch i {
		case 0:
			glyph = "S"
		case len(s.Path) - 1:
			glyph = "E"
		}
		set(c, pathStyle.Render(glyph))
	}
	for _, t := range s.Towers {
		set(t.Cell, m.towerStyle(t).Render(string(towerGlyph[t.Kind])))
	}
	for _, e := range s.Enemies {
		set(m.game.Layout.ScreenToCell(e.X, e.Y), enemyStyle.Render(string(enemyGlyph[e.Kind])))
	}
	if m.cursor.InBounds(s.Cols, s.Rows) {
		cells[m.cursor.Row][m.cursor.Col] = cursorStyle.Render(m.cellRune(m.cursor))
	}

	rows := make([]string, len(cells))
	for i, row := range cells {
		rows[i] = strings.Join(row, " ")
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cellRune is the unstyled glyph under the cursor.
func (m *model) cellRune(c grid.Cell) string {
	for _, e := range m.snap.Enemies {
		if m.game.Layout.ScreenToCell(e.X, e.Y) == c {
			return string(enemyGlyph[e.Kind])
		}
	}
	if t := m.towerAt(c); t != nil {
		return string(towerGlyph[t.Kind])
	}
	if m.game.Grid.IsPath(c) {
		return "="
	}
	return "."
}

func (m *model) towerAt(c grid.Cell) *app.TowerView {
	for i := range m.snap.Towers {
		if m.snap.Towers[i].Cell == c {
			return &m.snap.Towers[i]
		}
	}
	return nil
}

func (m *model) towerStyle(t app.TowerView) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(t.Level > 1)
	if def, err := m.game.Library.Tower(t.Kind); err == nil {
		style = style.Foreground(lipgloss.Color(hexColor(def.Color)))
	}
	if t.Selected {
		style = style.Underline(true)
	}
	return style
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
