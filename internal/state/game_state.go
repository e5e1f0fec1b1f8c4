// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"iso-tower-defense/internal/app"
	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/config"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/internal/ui"
	"iso-tower-defense/pkg/grid"
	"iso-tower-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	clickCooldown   = 150 * time.Millisecond
	messageLifetime = 2 * time.Second
	hudMargin       = 16
)

// GameState is the playing screen: it feeds input to the game and draws
// its snapshot.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.IsoRenderer
	fontFace font.Face
	logger   *slog.Logger

	indicator     *ui.StateIndicator
	waveIndicator *ui.WaveIndicator
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	infoPanel     *ui.InfoPanel

	snapshot     app.Snapshot
	sprites      []render.Sprite
	buildKind    defs.TowerKind
	hover        grid.Cell
	message      string
	messageUntil time.Time
	lastClick    time.Time
	backToMenu   func() State
}

func NewGameState(sm *StateMachine, settings *config.Settings, lib *defs.Library, logger *slog.Logger) (*GameState, error) {
	g, err := app.NewGame(settings, lib, logger)
	if err != nil {
		return nil, err
	}
	face := basicfont.Face7x13
	colors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GrassColor:      config.GrassColor,
		PathColor:       config.PathColor,
		StartColor:      render.LightenColor(config.PathColor),
		EndColor:        render.DarkenColor(config.PathColor),
		StrokeColor:     config.TileStrokeColor,
		TextLightColor:  config.TextLightColor,
		TextDarkColor:   color.RGBA{R: 20, G: 20, B: 20, A: 255},
		StrokeWidth:     1,
	}

	gs := &GameState{
		sm:            sm,
		game:          g,
		renderer:      render.NewIsoRenderer(g.Layout, g.Grid.Path, colors, face, config.ScreenWidth, config.ScreenHeight),
		fontFace:      face,
		logger:        logger,
		indicator:     ui.NewStateIndicator(config.ScreenWidth-40, 40, 15),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, hudMargin),
		speedButton:   ui.NewSpeedButton(config.ScreenWidth-100, 40, 12, config.SpeedButtonColors),
		pauseButton:   ui.NewPauseButton(config.ScreenWidth-160, 40, 10, config.TextLightColor, config.TextLightColor),
		infoPanel:     ui.NewInfoPanel(face, config.ScreenHeight),
		buildKind:     defs.TowerBasic,
		hover:         grid.Cell{Col: -1, Row: -1},
	}
	gs.backToMenu = func() State { return NewMenuState(sm, settings, lib, logger) }
	gs.snapshot = g.Snapshot()
	return gs, nil
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) setPaused(paused bool) {
	g.game.SetPaused(paused)
	g.pauseButton.SetPaused(paused)
}

func (g *GameState) Update(deltaTime float64) {
	if g.snapshot.Phase == component.GameOverState || g.snapshot.Phase == component.VictoryState {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.game.Close()
			g.sm.SetState(g.backToMenu())
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.handleKeys()

	x, y := ebiten.CursorPosition()
	g.hover = g.renderer.ScreenToCell(x, y)
	g.game.SetHighlighted(g.hover)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && time.Since(g.lastClick) >= clickCooldown {
		g.lastClick = time.Now()
		if g.handleUIClick(x, y) {
			if g.sm.Current() != State(g) {
				return
			}
		} else {
			g.handleMapClick()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.SelectTower(0)
	}

	g.game.Update(time.Duration(deltaTime * float64(time.Second)))
	g.snapshot = g.game.Snapshot()
	g.syncWidgets()
}

func (g *GameState) handleKeys() {
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if i < len(defs.TowerKinds) && inpututil.IsKeyJustPressed(key) {
			g.buildKind = defs.TowerKinds[i]
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.startWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.report(g.game.UpgradeSelected())
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.sell()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.cycleSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.game.SelectTower(0)
	}
}

// handleUIClick returns true when the click landed on a widget.
func (g *GameState) handleUIClick(x, y int) bool {
	switch {
	case g.speedButton.Contains(x, y):
		g.cycleSpeed()
	case g.pauseButton.Contains(x, y):
		g.sm.SetState(NewPauseState(g.sm, g))
	case g.indicator.Contains(x, y):
		g.indicator.HandleClick()
		g.startWave()
	case g.infoPanel.Contains(x, y):
		switch g.infoPanel.Click(x, y) {
		case ui.ActionUpgrade:
			g.report(g.game.UpgradeSelected())
		case ui.ActionSell:
			g.sell()
		}
	default:
		return false
	}
	return true
}

// handleMapClick selects an existing tower or builds a new one on the hovered cell.
func (g *GameState) handleMapClick() {
	if !g.game.Grid.InBounds(g.hover) {
		g.game.SelectTower(0)
		return
	}
	if g.game.ECS.TowerAt(g.hover) != nil {
		g.game.SelectAt(g.hover)
		return
	}
	if g.game.Selected() != nil {
		g.game.SelectTower(0)
		return
	}
	_, err := g.game.PlaceTower(g.hover, g.buildKind)
	g.report(err)
}

func (g *GameState) startWave() {
	if g.snapshot.Phase != component.BuildState {
		return
	}
	g.report(g.game.StartWave())
}

func (g *GameState) sell() {
	refund, err := g.game.SellSelected()
	if err == nil {
		g.say(fmt.Sprintf("sold for %.1f", refund))
		return
	}
	g.report(err)
}

func (g *GameState) cycleSpeed() {
	g.game.CycleSpeed()
	g.speedButton.Pulse()
}

func (g *GameState) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, app.ErrNoSelection):
	default:
		g.say(err.Error())
	}
}

func (g *GameState) say(msg string) {
	g.message = msg
	g.messageUntil = time.Now().Add(messageLifetime)
}

func (g *GameState) syncWidgets() {
	for i, step := range config.SpeedSteps {
		if step == g.snapshot.Speed {
			g.speedButton.SetState(i)
		}
	}
	g.pauseButton.SetPaused(g.snapshot.Paused)

	if sel := g.snapshot.Selected; sel != nil {
		canUpgrade := g.snapshot.Phase == component.BuildState && g.game.Ledger.CanAfford(sel.UpgradeCost)
		g.infoPanel.Show(*sel, canUpgrade)
	} else {
		g.infoPanel.Hide()
	}
	g.infoPanel.Update()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	s := g.snapshot
	g.sprites = buildSprites(s, g.game.Library, g.sprites)
	g.renderer.Draw(screen, g.sprites)
	if s.Phase == component.BuildState && g.game.ECS.TowerAt(g.hover) == nil {
		g.renderer.HighlightCell(screen, g.hover, g.game.CanPlaceTower(g.hover, g.buildKind) == nil)
	}

	stateColor := config.BuildStateColor
	if s.Phase == component.WaveState {
		stateColor = config.WaveStateColor
	}
	g.indicator.Draw(screen, stateColor)
	g.waveIndicator.Draw(screen, g.fontFace, s.Wave, s.BossWave)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	hud := []string{
		fmt.Sprintf("gold  %.1f", s.Balance),
		fmt.Sprintf("base  %d", s.BaseHealth),
		fmt.Sprintf("build %s [1-4]", g.buildKind),
	}
	if s.BossIncoming {
		hud = append(hud, "BOSS WAVE INCOMING")
	}
	for i, line := range hud {
		text.Draw(screen, line, g.fontFace, hudMargin, hudMargin+13+i*18, config.TextLightColor)
	}
	if g.message != "" && time.Now().Before(g.messageUntil) {
		text.Draw(screen, g.message, g.fontFace, hudMargin, config.ScreenHeight-hudMargin-130, config.HighlightColor)
	}

	cx, cy := ebiten.CursorPosition()
	g.infoPanel.Draw(screen, cx, cy)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  x%g", ebiten.ActualTPS(), s.Speed), config.ScreenWidth-110, config.ScreenHeight-20)

	switch s.Phase {
	case component.GameOverState:
		g.drawBanner(screen, "GAME OVER  press SPACE")
	case component.VictoryState:
		g.drawBanner(screen, "VICTORY  press SPACE")
	}
}

func (g *GameState) drawBanner(screen *ebiten.Image, label string) {
	vector.DrawFilledRect(screen, 0, config.ScreenHeight/2-30, config.ScreenWidth, 60, color.RGBA{A: 180}, false)
	w := text.BoundString(g.fontFace, label).Dx()
	text.Draw(screen, label, g.fontFace, (config.ScreenWidth-w)/2, config.ScreenHeight/2+5, color.White)
}
