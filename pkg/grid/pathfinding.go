// pkg/grid/pathfinding.go
package grid

// BFS finds a shortest 4-connected path from start to goal over an open
// cols x rows grid. Both endpoints are included. It returns nil when either
// endpoint is out of bounds or no route exists.
func BFS(start, goal Cell, cols, rows int) []Cell {
	if !start.InBounds(cols, rows) || !goal.InBounds(cols, rows) {
		return nil
	}
	if start == goal {
		return []Cell{start}
	}

	cameFrom := map[Cell]Cell{start: start}
	queue := []Cell{start}
	for head := 0; head < len(queue); head++ {
		current := queue[head]
		if current == goal {
			return reconstructPath(cameFrom, start, goal)
		}
		for _, n := range current.Neighbors(cols, rows) {
			if _, seen := cameFrom[n]; seen {
				continue
			}
			cameFrom[n] = current
			queue = append(queue, n)
		}
	}
	return nil
}

func reconstructPath(cameFrom map[Cell]Cell, start, goal Cell) []Cell {
	path := []Cell{goal}
	for node := goal; node != start; {
		node = cameFrom[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Stitch concatenates shortest segments between consecutive points, dropping
// the duplicated junction cell at the head of every segment after the first.
// It returns nil if any segment cannot be routed.
func Stitch(points []Cell, cols, rows int) []Cell {
	if len(points) == 0 {
		return nil
	}
	full := []Cell{}
	for i := 0; i+1 < len(points); i++ {
		segment := BFS(points[i], points[i+1], cols, rows)
		if len(segment) == 0 {
			return nil
		}
		if len(full) == 0 {
			full = segment
		} else {
			full = append(full, segment[1:]...)
		}
	}
	if len(points) == 1 {
		full = []Cell{points[0]}
	}
	return full
}
