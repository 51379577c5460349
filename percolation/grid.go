package percolation

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/percolation/unionfind"
)

// New creates an n-by-n Grid with every site blocked.
// Returns ErrInvalidSize if n ≤ 0 or if n²+2 does not fit in an int.
// No unions are performed here; boundary links are made as sites open.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidSize)
	}
	if n > (math.MaxInt-2)/n {
		return nil, fmt.Errorf("New(%d): n²+2 overflows int: %w", n, ErrInvalidSize)
	}
	cells := n * n
	full, err := unionfind.New(cells + 2)
	if err != nil {
		return nil, fmt.Errorf("percolation: full forest: %w", err)
	}
	top, err := unionfind.New(cells + 1)
	if err != nil {
		return nil, fmt.Errorf("percolation: top forest: %w", err)
	}

	return &Grid{
		n:             n,
		sites:         make([]bool, cells),
		full:          full,
		top:           top,
		virtualTop:    cells,
		virtualBottom: cells + 1,
	}, nil
}

// Size returns n, the side length of the grid.
func (g *Grid) Size() int {
	return g.n
}

// inRange reports whether (row, col) lies in [1, n] × [1, n].
func (g *Grid) inRange(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// index maps 1-indexed (row, col) to the 0-indexed row-major offset.
// (1,1) → 0, (n,n) → n²-1.
func (g *Grid) index(row, col int) int {
	return g.n*(row-1) + (col - 1)
}

// Coordinate converts a row-major site index back to 1-indexed (row, col).
// Returns ErrOutOfBounds if idx is outside [0, n²).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int, err error) {
	if idx < 0 || idx >= len(g.sites) {
		return 0, 0, fmt.Errorf("index %d on %dx%d grid: %w", idx, g.n, g.n, ErrOutOfBounds)
	}

	return idx/g.n + 1, idx%g.n + 1, nil
}

// check returns a wrapped ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) check(row, col int) error {
	if !g.inRange(row, col) {
		return fmt.Errorf("site (%d,%d) on %dx%d grid: %w", row, col, g.n, g.n, ErrOutOfBounds)
	}

	return nil
}

// Open opens site (row, col) and links it to its open neighbours.
//
// Steps:
//  1. Validate coordinates; an out-of-range call has no effect.
//  2. Return at once if the site is already open (Open is idempotent).
//  3. Mark the site open and bump the open-site counter.
//  4. For each in-range open neighbour (up, down, left, right), union in both forests.
//  5. Row 1: union with the virtual top in both forests.
//     Row n: union with the virtual bottom in the full forest only.
//
// Complexity: amortised O(α(n²)).
func (g *Grid) Open(row, col int) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	site := g.index(row, col)
	if g.sites[site] {
		return nil
	}

	g.sites[site] = true
	g.openSites++

	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.inRange(nr, nc) {
			continue
		}
		nb := g.index(nr, nc)
		if !g.sites[nb] {
			continue
		}
		if err := g.link(site, nb); err != nil {
			return err
		}
	}

	// n == 1 hits both branches: the only site is top and bottom at once.
	if row == 1 {
		if err := g.link(site, g.virtualTop); err != nil {
			return err
		}
	}
	if row == g.n {
		if _, err := g.full.Union(site, g.virtualBottom); err != nil {
			return fmt.Errorf("percolation: bottom link: %w", err)
		}
	}

	return nil
}

// link unions p and q in both forests.
func (g *Grid) link(p, q int) error {
	if _, err := g.full.Union(p, q); err != nil {
		return fmt.Errorf("percolation: full forest: %w", err)
	}
	if _, err := g.top.Union(p, q); err != nil {
		return fmt.Errorf("percolation: top forest: %w", err)
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Complexity: O(1).
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}

	return g.sites[g.index(row, col)], nil
}

// IsFull reports whether site (row, col) is open and linked to the top row.
// Only the top forest is consulted, so bottom connectivity never leaks in.
// Complexity: amortised O(α(n²)).
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.check(row, col); err != nil {
		return false, err
	}
	site := g.index(row, col)
	if !g.sites[site] {
		return false, nil
	}

	return g.isFull(site)
}

func (g *Grid) isFull(site int) (bool, error) {
	ok, err := g.top.Connected(site, g.virtualTop)
	if err != nil {
		return false, fmt.Errorf("percolation: top forest: %w", err)
	}

	return ok, nil
}

// NumberOfOpenSites returns the number of open sites.
// Complexity: O(1).
func (g *Grid) NumberOfOpenSites() int {
	return g.openSites
}

// Percolates reports whether the virtual top and bottom share a set in the
// full forest.
// Complexity: amortised O(α(n²)).
func (g *Grid) Percolates() bool {
	// Both sentinels are allocated by New, so Connected cannot fail here.
	ok, _ := g.full.Connected(g.virtualTop, g.virtualBottom)

	return ok
}

// FullSites returns the number of full sites. It scans the grid.
// Complexity: O(n²·α(n²)).
func (g *Grid) FullSites() int {
	count := 0
	for i, open := range g.sites {
		if !open {
			continue
		}
		// i < n² and the top sentinel exists, so isFull cannot fail here.
		if ok, _ := g.isFull(i); ok {
			count++
		}
	}

	return count
}

// String renders the grid one row per line:
//
//	'#' blocked, '.' open but not full, 'o' full.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n * (g.n + 1))
	for i, open := range g.sites {
		ch := byte('#')
		if open {
			ch = '.'
			// Same as FullSites: i is always a valid site index.
			if ok, _ := g.isFull(i); ok {
				ch = 'o'
			}
		}
		sb.WriteByte(ch)
		if (i+1)%g.n == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
