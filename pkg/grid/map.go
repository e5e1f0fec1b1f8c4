// pkg/grid/map.go
package grid

import (
	"errors"
	"fmt"
)

const (
	// TileEmpty and TilePath are the occupancy values stored in Grid.Tiles.
	TileEmpty = 0
	TilePath  = 1

	minCheckpoints        = 2
	maxCheckpoints        = 3
	checkpointMaxAttempts = 10
)

var (
	ErrNoPath       = errors.New("grid: no path between generated points")
	ErrGridTooSmall = errors.New("grid: grid must be at least 2x2")
	ErrBadCorners   = errors.New("grid: corners must be in bounds and axis-aligned")
)

// Rand is the subset of a random source the generator needs.
type Rand interface {
	Intn(n int) int
}

// Grid is a level: the occupancy matrix plus the traversal path through it.
type Grid struct {
	Cols, Rows int
	// Tiles is indexed [row][col]; path cells hold TilePath.
	Tiles [][]int
	// Path is every cell the enemies occupy, in walking order.
	Path []Cell
	// Waypoints are the cells projected to world space for enemy movement.
	// For generated levels this is Path itself; authored levels keep only
	// their corners.
	Waypoints   []Cell
	Checkpoints []Cell
}

// Generate builds a grid with a single path between two different boundary
// edges, routed by BFS through 2-3 random checkpoints.
func Generate(cols, rows int, rng Rand) (*Grid, error) {
	if cols < 2 || rows < 2 {
		return nil, ErrGridTooSmall
	}

	startEdge := Edge(rng.Intn(4))
	start := randomEdgeCell(startEdge, cols, rows, rng)

	var end Cell
	for {
		endEdge := Edge(rng.Intn(4))
		if endEdge == startEdge {
			continue
		}
		end = randomEdgeCell(endEdge, cols, rows, rng)
		if end != start {
			break
		}
	}

	taken := map[Cell]bool{start: true, end: true}
	count := minCheckpoints + rng.Intn(maxCheckpoints-minCheckpoints+1)
	checkpoints := make([]Cell, 0, count)
	for i := 0; i < count; i++ {
		for attempt := 0; attempt < checkpointMaxAttempts; attempt++ {
			c := Cell{Col: rng.Intn(cols), Row: rng.Intn(rows)}
			if taken[c] {
				continue
			}
			taken[c] = true
			checkpoints = append(checkpoints, c)
			break
		}
	}

	points := make([]Cell, 0, len(checkpoints)+2)
	points = append(points, start)
	points = append(points, checkpoints...)
	points = append(points, end)

	path := Stitch(points, cols, rows)
	if len(path) == 0 {
		return nil, fmt.Errorf("generate %dx%d: %w", cols, rows, ErrNoPath)
	}

	g := newGrid(cols, rows, path)
	g.Waypoints = path
	g.Checkpoints = checkpoints
	return g, nil
}

// NewFromCorners builds a grid from an authored list of corner cells.
// Consecutive corners must share a row or a column.
func NewFromCorners(cols, rows int, corners []Cell) (*Grid, error) {
	if cols < 2 || rows < 2 {
		return nil, ErrGridTooSmall
	}
	path, err := ExpandCorners(corners)
	if err != nil {
		return nil, err
	}
	for _, c := range path {
		if !c.InBounds(cols, rows) {
			return nil, fmt.Errorf("corner path leaves %dx%d grid at %v: %w", cols, rows, c, ErrBadCorners)
		}
	}
	g := newGrid(cols, rows, path)
	g.Waypoints = append([]Cell(nil), corners...)
	return g, nil
}

// ExpandCorners fills the axis-aligned runs between consecutive corners.
func ExpandCorners(corners []Cell) ([]Cell, error) {
	if len(corners) == 0 {
		return nil, fmt.Errorf("empty corner list: %w", ErrBadCorners)
	}
	path := []Cell{corners[0]}
	for i := 1; i < len(corners); i++ {
		from, to := corners[i-1], corners[i]
		if from.Col != to.Col && from.Row != to.Row {
			return nil, fmt.Errorf("corners %v and %v are not aligned: %w", from, to, ErrBadCorners)
		}
		step := Cell{Col: sign(to.Col - from.Col), Row: sign(to.Row - from.Row)}
		for c := from; c != to; {
			c = c.Add(step)
			path = append(path, c)
		}
	}
	return path, nil
}

func newGrid(cols, rows int, path []Cell) *Grid {
	tiles := make([][]int, rows)
	for r := range tiles {
		tiles[r] = make([]int, cols)
	}
	for _, c := range path {
		tiles[c.Row][c.Col] = TilePath
	}
	return &Grid{Cols: cols, Rows: rows, Tiles: tiles, Path: path}
}

// IsPath reports whether c is a path cell.
func (g *Grid) IsPath(c Cell) bool {
	if !c.InBounds(g.Cols, g.Rows) {
		return false
	}
	return g.Tiles[c.Row][c.Col] == TilePath
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.InBounds(g.Cols, g.Rows)
}

// Start returns the first path cell.
func (g *Grid) Start() Cell { return g.Path[0] }

// End returns the last path cell.
func (g *Grid) End() Cell { return g.Path[len(g.Path)-1] }

func randomEdgeCell(e Edge, cols, rows int, rng Rand) Cell {
	switch e {
	case EdgeTop:
		return Cell{Col: rng.Intn(cols), Row: 0}
	case EdgeRight:
		return Cell{Col: cols - 1, Row: rng.Intn(rows)}
	case EdgeBottom:
		return Cell{Col: rng.Intn(cols), Row: rows - 1}
	default:
		return Cell{Col: 0, Row: rng.Intn(rows)}
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
