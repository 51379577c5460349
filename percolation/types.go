package percolation

import "github.com/katalvlaran/percolation/unionfind"

// neighborOffsets lists the orthogonal (row, col) deltas: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an n-by-n percolation system.
//
// sites[i] is true once site i is open and never goes back to false.
// openSites always equals the number of true entries in sites.
// full spans n²+2 elements (sites, virtualTop, virtualBottom);
// top spans n²+1 elements (sites, virtualTop).
type Grid struct {
	n         int
	sites     []bool
	openSites int

	full *unionfind.UnionFind
	top  *unionfind.UnionFind

	virtualTop    int
	virtualBottom int
}
