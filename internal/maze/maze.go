// Package maze finds minimum-cost routes through grids where the cost of a
// move depends on the current heading.
//
// The search space is node-split: a node is a (cell, heading) pair. Node ids
// are dense integers so distances and adjacency live in flat slices rather
// than maps keyed by the pair.
package maze

import (
	"container/heap"
	"fmt"
	"math"

	"aoc2024/internal/grid"
	"aoc2024/internal/puzzle"
)

const (
	// MoveCost is charged for stepping forward.
	MoveCost = 1
	// TurnCost is charged for a quarter turn.
	TurnCost = 1000
)

// Node is a cell together with the heading it is entered with.
type Node struct {
	At     grid.Coord
	Facing grid.Direction
}

type edge struct {
	to   int
	cost int
}

// Graph is the node-split graph of an open-cell grid.
type Graph struct {
	bounds grid.Bounds
	out    [][]edge
	in     [][]edge
}

// New builds the graph for a grid of the given size. Blocked cells get no
// edges in or out. From every open (cell, heading) node there are up to three
// edges: forward, turn clockwise then move, turn counterclockwise then move.
func New(bounds grid.Bounds, blocked func(grid.Coord) bool) *Graph {
	n := bounds.Area() * 4
	g := &Graph{
		bounds: bounds,
		out:    make([][]edge, n),
		in:     make([][]edge, n),
	}
	for c := range bounds.Coords() {
		if blocked(c) {
			continue
		}
		for _, d := range grid.Directions {
			from := g.id(Node{At: c, Facing: d})
			for _, move := range []struct {
				heading grid.Direction
				cost    int
			}{
				{d, MoveCost},
				{d.Clockwise(), TurnCost + MoveCost},
				{d.Counterclockwise(), TurnCost + MoveCost},
			} {
				next, ok := move.heading.StepBounded(c, bounds)
				if !ok || blocked(next) {
					continue
				}
				to := g.id(Node{At: next, Facing: move.heading})
				g.out[from] = append(g.out[from], edge{to: to, cost: move.cost})
				g.in[to] = append(g.in[to], edge{to: from, cost: move.cost})
			}
		}
	}
	return g
}

func (g *Graph) id(n Node) int {
	return g.bounds.Index(n.At)*4 + int(n.Facing)
}

func (g *Graph) node(id int) Node {
	return Node{At: g.bounds.Coord(id / 4), Facing: grid.Direction(id % 4)}
}

// Facings returns the four nodes of a cell, one per heading.
func Facings(c grid.Coord) []Node {
	nodes := make([]Node, 0, 4)
	for _, d := range grid.Directions {
		nodes = append(nodes, Node{At: c, Facing: d})
	}
	return nodes
}

const unvisited = math.MaxInt

// Paths is the single-source distance table produced by ShortestPaths.
type Paths struct {
	g     *Graph
	start Node
	dist  []int
}

// ShortestPaths runs Dijkstra from start.
func (g *Graph) ShortestPaths(start Node) (*Paths, error) {
	if !g.bounds.Contains(start.At) {
		return nil, fmt.Errorf("start %v outside %dx%d grid", start.At, g.bounds.Rows, g.bounds.Cols)
	}
	dist := make([]int, len(g.out))
	for i := range dist {
		dist[i] = unvisited
	}
	src := g.id(start)
	dist[src] = 0

	pq := &queue{{id: src, cost: 0}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(item)
		if cur.cost > dist[cur.id] {
			continue
		}
		for _, e := range g.out[cur.id] {
			next := cur.cost + e.cost
			if next < dist[e.to] {
				dist[e.to] = next
				heap.Push(pq, item{id: e.to, cost: next})
			}
		}
	}
	return &Paths{g: g, start: start, dist: dist}, nil
}

// Cost returns the minimum cost to reach n.
func (p *Paths) Cost(n Node) (int, bool) {
	if !p.g.bounds.Contains(n.At) {
		return 0, false
	}
	d := p.dist[p.g.id(n)]
	return d, d != unvisited
}

// MinCost returns the cheapest of the goal nodes.
func (p *Paths) MinCost(goals ...Node) (int, error) {
	best := unvisited
	for _, n := range goals {
		if d, ok := p.Cost(n); ok && d < best {
			best = d
		}
	}
	if best == unvisited {
		return 0, fmt.Errorf("no path from %v: %w", p.start.At, puzzle.ErrUnreachable)
	}
	return best, nil
}

// Tiles counts the distinct cells lying on any minimum-cost path to any of
// the goal nodes that achieve MinCost. It walks tight edges
// (dist[u]+w == dist[v]) backwards from those goals, which visits exactly the
// union of all shortest paths.
func (p *Paths) Tiles(goals ...Node) (int, error) {
	best, err := p.MinCost(goals...)
	if err != nil {
		return 0, err
	}

	seen := make([]bool, len(p.dist))
	var stack []int
	for _, n := range goals {
		if d, ok := p.Cost(n); ok && d == best {
			id := p.g.id(n)
			if !seen[id] {
				seen[id] = true
				stack = append(stack, id)
			}
		}
	}

	cells := make(map[grid.Coord]struct{})
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cells[p.g.node(id).At] = struct{}{}
		for _, e := range p.g.in[id] {
			if seen[e.to] || p.dist[e.to] == unvisited {
				continue
			}
			if p.dist[e.to]+e.cost == p.dist[id] {
				seen[e.to] = true
				stack = append(stack, e.to)
			}
		}
	}
	return len(cells), nil
}

type item struct {
	id   int
	cost int
}

type queue []item

func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)        { *q = append(*q, x.(item)) }

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
