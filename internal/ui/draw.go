// internal/ui/draw.go
package ui

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whitePixel = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
})

// drawPath fills a closed path and strokes its outline.
func drawPath(screen *ebiten.Image, path *vector.Path, fill, stroke color.Color) {
	white := whitePixel()
	src := white.SubImage(white.Bounds().Inset(1)).(*ebiten.Image)

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	colorize(vs, fill)
	screen.DrawTriangles(vs, is, src, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 1})
	colorize(vs, stroke)
	screen.DrawTriangles(vs, is, src, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func colorize(vs []ebiten.Vertex, c color.Color) {
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}
