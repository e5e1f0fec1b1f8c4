// pkg/render/iso_renderer.go
package render

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"iso-tower-defense/pkg/grid"
)

// Sprite is one dynamic object drawn over the map.
type Sprite struct {
	X, Y   float64 // world position
	Radius float32
	Color  color.RGBA
	Stroke color.RGBA
	// Health in [0, 1] draws a bar above the sprite; negative hides it.
	Health float64
	// Ring draws a range circle of this world radius when positive.
	Ring  float64
	Label string
}

// IsoRenderer draws an isometric grid and its sprites. World coordinates are
// the grid layout's; Origin shifts them onto the screen.
type IsoRenderer struct {
	layout   grid.Layout
	path     map[grid.Cell]bool
	start    grid.Cell
	end      grid.Cell
	colors   *MapColors
	fontFace font.Face

	OriginX, OriginY float64

	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
	mapImage *ebiten.Image
	sorted   []Sprite
}

func NewIsoRenderer(layout grid.Layout, path []grid.Cell, colors *MapColors, face font.Face, screenWidth, screenHeight int) *IsoRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	onPath := make(map[grid.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	w, h := layout.Size()
	r := &IsoRenderer{
		layout:   layout,
		path:     onPath,
		colors:   colors,
		fontFace: face,
		OriginX:  (float64(screenWidth) - w) / 2,
		OriginY:  (float64(screenHeight) - h) / 2,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 8),
		fillIs:   make([]uint16, 0, 12),
		strokeVs: make([]ebiten.Vertex, 0, 32),
		strokeIs: make([]uint16, 0, 48),
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
	if len(path) > 0 {
		r.start, r.end = path[0], path[len(path)-1]
	}
	r.RenderMapImage()
	return r
}

// ScreenToCell maps a cursor position to a grid cell (possibly out of bounds).
func (r *IsoRenderer) ScreenToCell(x, y int) grid.Cell {
	return r.layout.ScreenToCell(float64(x)-r.OriginX, float64(y)-r.OriginY)
}

// RenderMapImage pre-renders the static tiles.
func (r *IsoRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)
	// Back to front so nearer tiles overlap farther ones.
	for sum := 0; sum < r.layout.Cols+r.layout.Rows-1; sum++ {
		for col := 0; col < r.layout.Cols; col++ {
			row := sum - col
			if row < 0 || row >= r.layout.Rows {
				continue
			}
			c := grid.Cell{Col: col, Row: row}
			r.drawTile(r.mapImage, c, r.tileColor(c), r.colors.StrokeColor)
		}
	}
}

func (r *IsoRenderer) tileColor(c grid.Cell) color.RGBA {
	switch {
	case c == r.start && r.path[c]:
		return r.colors.StartColor
	case c == r.end && r.path[c]:
		return r.colors.EndColor
	case r.path[c]:
		return r.colors.PathColor
	default:
		return r.colors.GrassColor
	}
}

func (r *IsoRenderer) diamond(c grid.Cell) vector.Path {
	corners := r.layout.TileCorners(c)
	path := vector.Path{}
	for i, p := range corners {
		x, y := float32(p[0]+r.OriginX), float32(p[1]+r.OriginY)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return path
}

func (r *IsoRenderer) drawTile(target *ebiten.Image, c grid.Cell, fill, stroke color.RGBA) {
	path := r.diamond(c)

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	tint(r.fillVs, fill)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.colors.StrokeWidth,
	})
	tint(r.strokeVs, stroke)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func tint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}

// HighlightCell outlines the hovered cell; valid picks the outline color.
func (r *IsoRenderer) HighlightCell(screen *ebiten.Image, c grid.Cell, valid bool) {
	if !c.InBounds(r.layout.Cols, r.layout.Rows) {
		return
	}
	outline := color.RGBA{R: 255, G: 255, A: 255}
	if !valid {
		outline = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	}
	path := r.diamond(c)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{Width: 2})
	tint(r.strokeVs, outline)
	screen.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Draw blits the map and then the sprites, sorted by depth.
func (r *IsoRenderer) Draw(screen *ebiten.Image, sprites []Sprite) {
	screen.DrawImage(r.mapImage, nil)

	r.sorted = append(r.sorted[:0], sprites...)
	sort.SliceStable(r.sorted, func(i, j int) bool { return r.sorted[i].Y < r.sorted[j].Y })

	for _, s := range r.sorted {
		x, y := float32(s.X+r.OriginX), float32(s.Y+r.OriginY)
		if s.Ring > 0 {
			vector.StrokeCircle(screen, x, y, float32(s.Ring), 1, color.RGBA{R: 255, G: 255, B: 255, A: 120}, true)
		}
		vector.DrawFilledCircle(screen, x, y, s.Radius, s.Color, true)
		if s.Stroke.A > 0 {
			vector.StrokeCircle(screen, x, y, s.Radius, 2, s.Stroke, true)
		}
		if s.Health >= 0 {
			r.drawHealthBar(screen, x, y-s.Radius-6, s.Radius*2, s.Health)
		}
		if s.Label != "" {
			r.drawLabel(screen, s.Label, x, y, s.Color)
		}
	}
}

func (r *IsoRenderer) drawHealthBar(screen *ebiten.Image, cx, y, width float32, fraction float64) {
	x := cx - width/2
	vector.DrawFilledRect(screen, x, y, width, 3, color.RGBA{A: 255}, false)
	vector.DrawFilledRect(screen, x, y, width*float32(fraction), 3, color.RGBA{G: 255, A: 255}, false)
}

func (r *IsoRenderer) drawLabel(screen *ebiten.Image, label string, x, y float32, bg color.RGBA) {
	textColor := r.colors.TextLightColor
	if isLight(bg) {
		textColor = r.colors.TextDarkColor
	}
	b := text.BoundString(r.fontFace, label)
	text.Draw(screen, label, r.fontFace, int(x)-b.Dx()/2, int(y)+b.Dy()/2, textColor)
}

// CellLabel is the coordinate text used in debug overlays.
func CellLabel(c grid.Cell) string {
	return fmt.Sprintf("%d,%d", c.Col, c.Row)
}
