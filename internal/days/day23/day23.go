// Package day23 finds LAN parties in a network map.
package day23

import (
	"context"
	"slices"
	"strings"

	"aoc2024/internal/puzzle"
)

// Network is an undirected graph over computer names.
type Network struct {
	names []string
	adj   [][]bool
}

func (n Network) linked(a, b int) bool { return n.adj[a][b] }

func New() puzzle.Solver {
	return &puzzle.Unit[Network]{
		Number: 23,
		Name:   "LAN Party",
		Parse:  parse,
		Part1: func(_ context.Context, n Network) (puzzle.Answer, error) {
			return puzzle.Int(n.triangles("t")), nil
		},
		Part2: func(ctx context.Context, n Network) (puzzle.Answer, error) {
			clique, err := n.maxClique(ctx)
			if err != nil {
				return nil, err
			}
			names := make([]string, len(clique))
			for i, v := range clique {
				names[i] = n.names[v]
			}
			slices.Sort(names)
			return puzzle.Text(strings.Join(names, ",")), nil
		},
	}
}

func parse(input string) (Network, error) {
	index := make(map[string]int)
	var n Network
	id := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		index[name] = len(n.names)
		n.names = append(n.names, name)
		return len(n.names) - 1
	}
	type link struct{ a, b int }
	var links []link
	for i, line := range puzzle.Lines(input) {
		a, b, ok := strings.Cut(line, "-")
		if !ok || a == "" || b == "" || a == b {
			return Network{}, puzzle.Malformed(i+1, "bad link %q", line)
		}
		links = append(links, link{id(a), id(b)})
	}
	n.adj = make([][]bool, len(n.names))
	for i := range n.adj {
		n.adj[i] = make([]bool, len(n.names))
	}
	for _, l := range links {
		n.adj[l.a][l.b] = true
		n.adj[l.b][l.a] = true
	}
	return n, nil
}

// triangles counts three-computer sets with at least one name starting with
// prefix.
func (n Network) triangles(prefix string) int {
	count := 0
	for a := range n.names {
		for b := a + 1; b < len(n.names); b++ {
			if !n.linked(a, b) {
				continue
			}
			for c := b + 1; c < len(n.names); c++ {
				if !n.linked(a, c) || !n.linked(b, c) {
					continue
				}
				if strings.HasPrefix(n.names[a], prefix) ||
					strings.HasPrefix(n.names[b], prefix) ||
					strings.HasPrefix(n.names[c], prefix) {
					count++
				}
			}
		}
	}
	return count
}

// maxClique runs Bron–Kerbosch with pivoting and returns a largest clique.
func (n Network) maxClique(ctx context.Context) ([]int, error) {
	var best []int
	neighbours := func(set []int, v int) []int {
		var out []int
		for _, u := range set {
			if n.linked(u, v) {
				out = append(out, u)
			}
		}
		return out
	}
	var expand func(r, p, x []int) error
	expand = func(r, p, x []int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(p) == 0 && len(x) == 0 {
			if len(r) > len(best) {
				best = slices.Clone(r)
			}
			return nil
		}
		pivot, most := -1, -1
		for _, u := range slices.Concat(p, x) {
			if k := len(neighbours(p, u)); k > most {
				pivot, most = u, k
			}
		}
		for _, v := range slices.Clone(p) {
			if n.linked(pivot, v) {
				continue
			}
			if err := expand(append(r, v), neighbours(p, v), neighbours(x, v)); err != nil {
				return err
			}
			p = slices.DeleteFunc(p, func(u int) bool { return u == v })
			x = append(x, v)
		}
		return nil
	}
	all := make([]int, len(n.names))
	for i := range all {
		all[i] = i
	}
	if err := expand(nil, all, nil); err != nil {
		return nil, err
	}
	return best, nil
}
