// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton shows the speed multiplier as one, two or three triangles.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// SetState selects the step shown; out of range values wrap.
func (b *SpeedButton) SetState(step int) {
	if n := len(b.StateColors); n > 0 {
		b.CurrentState = ((step % n) + n) % n
	}
}

func (b *SpeedButton) Pulse() {
	b.LastClickTime = time.Now()
}

func (b *SpeedButton) Contains(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)
	fill := b.StateColors[b.CurrentState]

	height := size * 1.2
	width := size
	offset := width * 0.6
	count := b.CurrentState + 1
	left := b.X - (width+offset*float32(count-1))/2
	for i := 0; i < count; i++ {
		x := left + offset*float32(i)
		var path vector.Path
		path.MoveTo(x, b.Y-height/2)
		path.LineTo(x+width, b.Y)
		path.LineTo(x, b.Y+height/2)
		path.Close()
		drawPath(screen, &path, fill, color.White)
	}
}
