// internal/state/sprites.go
package state

import (
	"image/color"
	"strconv"

	"iso-tower-defense/internal/app"
	"iso-tower-defense/internal/component"
	"iso-tower-defense/internal/defs"
	"iso-tower-defense/pkg/render"
)

var enemyLook = map[defs.EnemyKind]struct {
	radius float32
	color  color.RGBA
}{
	defs.EnemyBasic: {7, color.RGBA{R: 200, G: 60, B: 60, A: 255}},
	defs.EnemyFast:  {6, color.RGBA{R: 240, G: 160, B: 40, A: 255}},
	defs.EnemyTank:  {9, color.RGBA{R: 120, G: 70, B: 160, A: 255}},
	defs.EnemyBoss:  {12, color.RGBA{R: 90, G: 0, B: 0, A: 255}},
}

var projectileColor = map[component.ProjectileKind]color.RGBA{
	component.ProjectileBasic:  {R: 255, G: 255, B: 255, A: 255},
	component.ProjectileSniper: {R: 255, G: 220, B: 0, A: 255},
	component.ProjectileRapid:  {R: 0, G: 255, B: 160, A: 255},
	component.ProjectileSplash: {R: 255, G: 90, B: 40, A: 255},
}

var (
	selectedStroke    = color.RGBA{R: 255, G: 255, A: 255}
	highlightedStroke = color.RGBA{R: 210, G: 210, B: 210, A: 255}
	fallbackColor     = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

// buildSprites turns a snapshot into renderer sprites. Towers carry their
// level as a label and show their range ring while selected.
func buildSprites(s app.Snapshot, lib *defs.Library, dst []render.Sprite) []render.Sprite {
	dst = dst[:0]
	for _, t := range s.Towers {
		sp := render.Sprite{
			X:      t.X,
			Y:      t.Y,
			Radius: 10,
			Color:  fallbackColor,
			Health: -1,
			Label:  strconv.Itoa(t.Level),
		}
		if def, err := lib.Tower(t.Kind); err == nil && def.Color.A > 0 {
			sp.Color = def.Color
		}
		switch {
		case t.Selected:
			sp.Stroke = selectedStroke
			sp.Ring = t.Range
		case t.Highlighted:
			sp.Stroke = highlightedStroke
		}
		dst = append(dst, sp)
	}
	for _, e := range s.Enemies {
		look, ok := enemyLook[e.Kind]
		if !ok {
			look.radius, look.color = 7, fallbackColor
		}
		dst = append(dst, render.Sprite{
			X:      e.X,
			Y:      e.Y,
			Radius: look.radius,
			Color:  look.color,
			Health: e.Health,
		})
	}
	for _, p := range s.Projectiles {
		c, ok := projectileColor[p.Kind]
		if !ok {
			c = fallbackColor
		}
		dst = append(dst, render.Sprite{X: p.X, Y: p.Y, Radius: 3, Color: c, Health: -1})
	}
	return dst
}
