// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	GrassColor      color.RGBA
	PathColor       color.RGBA
	StartColor      color.RGBA
	EndColor        color.RGBA
	StrokeColor     color.RGBA
	TextLightColor  color.RGBA
	TextDarkColor   color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor moves each channel 40 steps towards white.
func LightenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+40)),
		G: uint8(min(255, int(c.G)+40)),
		B: uint8(min(255, int(c.B)+40)),
		A: 255,
	}
}

func isLight(c color.RGBA) bool {
	return (int(c.R)+int(c.G)+int(c.B))/3 > 128
}
