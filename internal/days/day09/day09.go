// Package day09 compacts an amphipod's disk.
package day09

import (
	"context"
	"strings"

	"aoc2024/internal/puzzle"
)

const free = -1

// span is a run of blocks: a file when id >= 0, free space otherwise.
type span struct {
	id, start, size int
}

// Disk is the dense map expanded into file and free spans.
type Disk struct {
	files []span
	gaps  []span
}

func New() puzzle.Solver {
	return &puzzle.Unit[Disk]{
		Number: 9,
		Name:   "Disk Fragmenter",
		Parse:  parse,
		Part1: func(_ context.Context, d Disk) (puzzle.Answer, error) {
			return puzzle.Int(checksum(compactBlocks(d))), nil
		},
		Part2: func(_ context.Context, d Disk) (puzzle.Answer, error) {
			return puzzle.Int(compactFiles(d)), nil
		},
		Samples: []puzzle.Example{
			{Part: puzzle.Part1, Input: "2333133121414131402", Want: "1928"},
			{Part: puzzle.Part2, Input: "2333133121414131402", Want: "2858"},
		},
	}
}

func parse(input string) (Disk, error) {
	var d Disk
	input = strings.TrimSpace(input)
	if input == "" {
		return d, puzzle.Malformed(1, "empty disk map")
	}
	pos := 0
	for i, r := range input {
		if r < '0' || r > '9' {
			return d, puzzle.Malformed(1, "unexpected %q at offset %d", r, i)
		}
		n := int(r - '0')
		if i%2 == 0 {
			d.files = append(d.files, span{id: i / 2, start: pos, size: n})
		} else if n > 0 {
			d.gaps = append(d.gaps, span{id: free, start: pos, size: n})
		}
		pos += n
	}
	return d, nil
}

// compactBlocks moves single blocks from the end into the leftmost free
// block until no gaps remain before the last file block.
func compactBlocks(d Disk) []int {
	var blocks []int
	for _, f := range d.files {
		for len(blocks) < f.start {
			blocks = append(blocks, free)
		}
		for range f.size {
			blocks = append(blocks, f.id)
		}
	}
	lo, hi := 0, len(blocks)-1
	for {
		for lo < hi && blocks[lo] != free {
			lo++
		}
		for hi > lo && blocks[hi] == free {
			hi--
		}
		if lo >= hi {
			return blocks
		}
		blocks[lo], blocks[hi] = blocks[hi], free
	}
}

func checksum(blocks []int) int {
	sum := 0
	for i, id := range blocks {
		if id != free {
			sum += i * id
		}
	}
	return sum
}

// compactFiles moves each file once, highest id first, into the leftmost gap
// that fits it and lies to its left.
func compactFiles(d Disk) int {
	gaps := append([]span(nil), d.gaps...)
	sum := 0
	for i := len(d.files) - 1; i >= 0; i-- {
		f := d.files[i]
		for g := range gaps {
			if gaps[g].start >= f.start {
				break
			}
			if gaps[g].size >= f.size {
				f.start = gaps[g].start
				gaps[g].start += f.size
				gaps[g].size -= f.size
				break
			}
		}
		for b := range f.size {
			sum += (f.start + b) * f.id
		}
	}
	return sum
}
