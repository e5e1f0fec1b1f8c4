// pkg/grid/cell.go
package grid

import "strconv"

// Cell is a (column, row) coordinate on a rectangular grid.
type Cell struct {
	Col, Row int
}

func (c Cell) String() string {
	return "(" + strconv.Itoa(c.Col) + "," + strconv.Itoa(c.Row) + ")"
}

// Edge identifies one of the four grid boundaries.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return "unknown"
	}
}

// directions is the fixed neighbour expansion order used by BFS.
var directions = []Cell{
	{Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: -1, Row: 0}, {Col: 0, Row: -1},
}

// Add returns the component-wise sum of two cells.
func (c Cell) Add(o Cell) Cell {
	return Cell{Col: c.Col + o.Col, Row: c.Row + o.Row}
}

// InBounds reports whether c lies inside a cols x rows grid.
func (c Cell) InBounds(cols, rows int) bool {
	return c.Col >= 0 && c.Col < cols && c.Row >= 0 && c.Row < rows
}

// Neighbors returns the 4-connected neighbours of c that lie inside the grid.
func (c Cell) Neighbors(cols, rows int) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range directions {
		n := c.Add(d)
		if n.InBounds(cols, rows) {
			out = append(out, n)
		}
	}
	return out
}

// IsAdjacent reports whether a and b differ by exactly one unit on exactly one axis.
func IsAdjacent(a, b Cell) bool {
	dc := abs(a.Col - b.Col)
	dr := abs(a.Row - b.Row)
	return dc+dr == 1
}

// Edges returns every boundary edge c lies on. Corner cells lie on two.
func (c Cell) Edges(cols, rows int) []Edge {
	var edges []Edge
	if !c.InBounds(cols, rows) {
		return nil
	}
	if c.Row == 0 {
		edges = append(edges, EdgeTop)
	}
	if c.Col == cols-1 {
		edges = append(edges, EdgeRight)
	}
	if c.Row == rows-1 {
		edges = append(edges, EdgeBottom)
	}
	if c.Col == 0 {
		edges = append(edges, EdgeLeft)
	}
	return edges
}

// OnEdge reports whether c lies on boundary e.
func (c Cell) OnEdge(e Edge, cols, rows int) bool {
	for _, ce := range c.Edges(cols, rows) {
		if ce == e {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
