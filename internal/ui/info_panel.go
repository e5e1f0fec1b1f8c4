// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"iso-tower-defense/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 110
	panelWidth     = 260
	panelMargin    = 10
	animationSpeed = 10.0
	lineHeight     = 18
)

// PanelAction is what a click on the info panel asks for.
type PanelAction int

const (
	ActionNone PanelAction = iota
	ActionUpgrade
	ActionSell
)

// InfoPanel slides up from the bottom edge to show the selected tower.
type InfoPanel struct {
	fontFace      font.Face
	screenHeight  float64
	currentY      float64
	targetY       float64
	stats         component.TowerStats
	visible       bool
	canUpgrade    bool
	UpgradeButton *Button
	SellButton    *Button
}

func NewInfoPanel(face font.Face, screenHeight int) *InfoPanel {
	return &InfoPanel{
		fontFace:      face,
		screenHeight:  float64(screenHeight),
		currentY:      float64(screenHeight),
		targetY:       float64(screenHeight),
		UpgradeButton: NewButton(image.Rectangle{}, "Upgrade"),
		SellButton:    NewButton(image.Rectangle{}, "Sell"),
	}
}

// Show targets the panel at a tower; canUpgrade greys out the upgrade button when false.
func (p *InfoPanel) Show(stats component.TowerStats, canUpgrade bool) {
	p.stats = stats
	p.canUpgrade = canUpgrade
	p.visible = true
	p.targetY = p.screenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = p.screenHeight
}

// Visible reports whether any part of the panel is on screen.
func (p *InfoPanel) Visible() bool {
	return p.visible
}

func (p *InfoPanel) Update() {
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		switch {
		case math.Abs(diff) < animationSpeed:
			p.currentY = p.targetY
		case diff > 0:
			p.currentY += animationSpeed
		default:
			p.currentY -= animationSpeed
		}
	}
	if p.currentY >= p.screenHeight {
		p.visible = false
	}
	p.layout()
}

func (p *InfoPanel) layout() {
	top := int(p.currentY)
	left := panelMargin
	p.UpgradeButton.Rect = image.Rect(left+150, top+20, left+panelWidth-10, top+48)
	p.SellButton.Rect = image.Rect(left+150, top+58, left+panelWidth-10, top+86)
	p.UpgradeButton.Text = fmt.Sprintf("Upgrade %.0f", p.stats.UpgradeCost)
	p.UpgradeButton.Disabled = !p.canUpgrade
}

// Click maps a cursor click to a panel action.
func (p *InfoPanel) Click(x, y int) PanelAction {
	if !p.visible {
		return ActionNone
	}
	switch {
	case p.UpgradeButton.Clicked(x, y):
		return ActionUpgrade
	case p.SellButton.Clicked(x, y):
		return ActionSell
	}
	return ActionNone
}

// Contains reports whether the point is over the panel body.
func (p *InfoPanel) Contains(x, y int) bool {
	if !p.visible {
		return false
	}
	top := int(p.currentY)
	return image.Pt(x, y).In(image.Rect(panelMargin, top, panelMargin+panelWidth, top+panelHeight-panelMargin))
}

func (p *InfoPanel) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	if !p.visible {
		return
	}
	top := float32(p.currentY)
	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.DrawFilledRect(screen, panelMargin, top, panelWidth, panelHeight-panelMargin, bgColor, true)
	vector.StrokeRect(screen, panelMargin, top, panelWidth, panelHeight-panelMargin, 2, borderColor, true)

	lines := []string{
		fmt.Sprintf("%s  L%d", p.stats.Type, p.stats.Level),
		fmt.Sprintf("Range    %.0f", p.stats.Range),
		fmt.Sprintf("Cooldown %.0f", p.stats.Cooldown),
		fmt.Sprintf("Damage   %.0f", p.stats.Damage),
	}
	x := panelMargin + 12
	y := int(top) + 26
	for i, line := range lines {
		text.Draw(screen, line, p.fontFace, x, y+i*lineHeight, color.White)
	}

	p.UpgradeButton.Draw(screen, p.fontFace, cursorX, cursorY)
	p.SellButton.Draw(screen, p.fontFace, cursorX, cursorY)
}
