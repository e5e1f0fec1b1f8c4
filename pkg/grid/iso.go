// pkg/grid/iso.go
package grid

import "math"

// Isometric tile size in world units.
const (
	TileWidth  = 64.0
	TileHeight = 32.0
)

// ToIsometric projects a cell to the unshifted isometric plane.
func ToIsometric(col, row int) (x, y float64) {
	x = float64(col-row) * (TileWidth / 2)
	y = float64(col+row) * (TileHeight / 2)
	return
}

// Layout centres a cols x rows isometric grid horizontally.
type Layout struct {
	Cols, Rows int
}

// OffsetX is the horizontal shift that centres the diamond.
func (l Layout) OffsetX() float64 {
	return float64(l.Cols+l.Rows) * (TileWidth / 2) / 2
}

// Size returns the bounding box of the projected grid.
func (l Layout) Size() (w, h float64) {
	return float64(l.Cols+l.Rows) * (TileWidth / 2), float64(l.Cols+l.Rows) * (TileHeight / 2)
}

// Waypoint is the world position enemies walk to for cell c.
func (l Layout) Waypoint(c Cell) (x, y float64) {
	ix, iy := ToIsometric(c.Col, c.Row)
	return ix + l.OffsetX() + TileHeight/2, iy + TileHeight/4
}

// TileCenter is the world position at the centre of the tile diamond; towers stand here.
func (l Layout) TileCenter(c Cell) (x, y float64) {
	ix, iy := ToIsometric(c.Col, c.Row)
	return ix + l.OffsetX() + TileWidth/2, iy + TileHeight/2
}

// TileCorners returns the left, top, right and bottom vertices of the tile diamond.
func (l Layout) TileCorners(c Cell) [4][2]float64 {
	ix, iy := ToIsometric(c.Col, c.Row)
	x := ix + l.OffsetX()
	return [4][2]float64{
		{x, iy + TileHeight/2},
		{x + TileWidth/2, iy},
		{x + TileWidth, iy + TileHeight/2},
		{x + TileWidth/2, iy + TileHeight},
	}
}

// ScreenToCell inverts the projection. The result may be out of bounds.
func (l Layout) ScreenToCell(x, y float64) Cell {
	u := (x - l.OffsetX() - TileWidth/2) / (TileWidth / 2)
	v := y / (TileHeight / 2)
	return Cell{
		Col: int(math.Floor((u + v) / 2)),
		Row: int(math.Floor((v - u) / 2)),
	}
}
