package ui

import (
	"image"
	"image/color"
	"testing"

	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestToRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, ""},
		{-3, ""},
		{1, "I"},
		{4, "IV"},
		{9, "IX"},
		{10, "X"},
		{14, "XIV"},
		{40, "XL"},
		{1994, "MCMXCIV"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toRoman(tt.in), "toRoman(%d)", tt.in)
	}
}

func TestButtonClicked(t *testing.T) {
	b := NewButton(image.Rect(10, 10, 50, 30), "ok")
	assert.True(t, b.Clicked(10, 10))
	assert.True(t, b.Clicked(49, 29))
	assert.False(t, b.Clicked(50, 30), "max corner is exclusive")

	b.Disabled = true
	assert.True(t, b.Contains(20, 20))
	assert.False(t, b.Clicked(20, 20))
}

func TestCircleHitTests(t *testing.T) {
	ind := NewStateIndicator(100, 100, 10)
	assert.True(t, ind.Contains(105, 105))
	assert.False(t, ind.Contains(111, 100))

	pause := NewPauseButton(50, 50, 10, nil, nil)
	assert.True(t, pause.Contains(60, 60))
	assert.False(t, pause.Contains(70, 50))
}

func TestSpeedButtonStateWraps(t *testing.T) {
	b := NewSpeedButton(0, 0, 10, make([]color.Color, 3))
	b.SetState(2)
	assert.Equal(t, 2, b.CurrentState)
	b.SetState(3)
	assert.Equal(t, 0, b.CurrentState)
	b.SetState(-1)
	assert.Equal(t, 2, b.CurrentState)
}

func TestInfoPanelSlidesAndClicks(t *testing.T) {
	p := NewInfoPanel(nil, 800)
	assert.False(t, p.Visible())
	assert.Equal(t, ActionNone, p.Click(100, 760))

	p.Show(component.TowerStats{Type: defs.TowerBasic, Level: 1, UpgradeCost: 50}, true)
	for i := 0; i < 20; i++ {
		p.Update()
	}
	assert.True(t, p.Visible())
	assert.Equal(t, 800.0-panelHeight, p.currentY)

	up := p.UpgradeButton.Rect.Min
	sell := p.SellButton.Rect.Min
	assert.Equal(t, ActionUpgrade, p.Click(up.X+1, up.Y+1))
	assert.Equal(t, ActionSell, p.Click(sell.X+1, sell.Y+1))
	assert.True(t, p.Contains(panelMargin+5, 800-panelHeight+5))

	p.Show(component.TowerStats{Type: defs.TowerBasic, Level: 2, UpgradeCost: 50}, false)
	p.Update()
	assert.Equal(t, ActionNone, p.Click(up.X+1, up.Y+1), "upgrade disabled when unaffordable")

	p.Hide()
	for i := 0; i < 20; i++ {
		p.Update()
	}
	assert.False(t, p.Visible())
	assert.Equal(t, ActionNone, p.Click(sell.X+1, sell.Y+1))
}
