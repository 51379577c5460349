package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

// ExampleGrid opens a bent path through a 4×4 grid and reports when the
// system first percolates.
//
//	o o # #
//	# o # #
//	# o o #
//	# # o #
func ExampleGrid() {
	g, _ := percolation.New(4)
	path := [][2]int{{1, 1}, {1, 2}, {2, 2}, {3, 2}, {3, 3}, {4, 3}}
	for i, s := range path {
		_ = g.Open(s[0], s[1])
		if g.Percolates() {
			fmt.Printf("percolates after %d opens\n", i+1)
		}
	}
	full, _ := g.IsFull(4, 3)
	fmt.Println("(4,3) full:", full)
	fmt.Println("open sites:", g.NumberOfOpenSites())
	fmt.Print(g)

	// Output:
	// percolates after 6 opens
	// (4,3) full: true
	// open sites: 6
	// oo##
	// #o##
	// #oo#
	// ##o#
}

// ExampleGrid_IsFull shows that a bottom pocket stays empty after the
// system percolates elsewhere.
func ExampleGrid_IsFull() {
	g, _ := percolation.New(3)
	for _, s := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {3, 3}} {
		_ = g.Open(s[0], s[1])
	}
	full, _ := g.IsFull(3, 3)
	fmt.Println("percolates:", g.Percolates())
	fmt.Println("(3,3) full:", full)

	// Output:
	// percolates: true
	// (3,3) full: false
}
