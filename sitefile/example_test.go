package sitefile_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/percolation/sitefile"
)

// ExampleReplay reads an algs4 input and reports when the grid percolates.
func ExampleReplay() {
	in := `4
1 4
2 4
2 3
3 3
4 3
4 1
`
	s, _ := sitefile.ReadText(strings.NewReader(in))
	rep, _ := sitefile.Replay(s)

	fmt.Printf("open=%d full=%d percolates=%v at=%d\n",
		rep.OpenSites, rep.FullSites, rep.Percolates, rep.PercolatedAt)
	fmt.Print(rep.Grid)

	// Output:
	// open=6 full=5 percolates=true at=5
	// ###o
	// ##oo
	// ##o#
	// .#o#
}
