package maze

import "aoc2024/internal/grid"

// Unreachable marks cells Distances could not reach.
const Unreachable = -1

// Distances returns the number of orthogonal steps from start to every cell,
// indexed by bounds.Index. Blocked cells and cells cut off from start hold
// Unreachable.
func Distances(bounds grid.Bounds, blocked func(grid.Coord) bool, start grid.Coord) []int {
	dist := make([]int, bounds.Area())
	for i := range dist {
		dist[i] = Unreachable
	}
	if !bounds.Contains(start) || blocked(start) {
		return dist
	}

	dist[bounds.Index(start)] = 0
	queue := []grid.Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[bounds.Index(cur)]
		for _, next := range bounds.Neighbors(cur) {
			i := bounds.Index(next)
			if dist[i] != Unreachable || blocked(next) {
				continue
			}
			dist[i] = d + 1
			queue = append(queue, next)
		}
	}
	return dist
}
