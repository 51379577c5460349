// Package percolation is the module root of github.com/katalvlaran/percolation:
// an in-memory percolation engine on n-by-n grids, built on a fixed-size
// union-find forest.
//
// What is percolation?
//
//	Sites of an n-by-n grid open one at a time. A site is full when an
//	open path links it to the top row; the system percolates when some
//	bottom-row site is full.
//
// Under the hood, everything is organized under these subpackages:
//
//	unionfind/     — weighted quick-union with path halving over [0, n)
//	percolation/   — Grid (Open, IsOpen, IsFull, NumberOfOpenSites, Percolates)
//	                 and Synchronized for shared use
//	sitefile/      — algs4 text and YAML scenarios, deterministic Replay reports
//	cmd/percolate/ — CLI: run a scenario file, or check sites given as arguments
//
// Quick ASCII example (3×3, '#' blocked, 'o' full, '.' open but not full):
//
//	o # #
//	o # .
//	o # .
//
//	percolates through column 1; the right-hand pocket touches the bottom
//	row but is not full (no backwash).
//
//	go install github.com/katalvlaran/percolation/cmd/percolate@latest
package percolation
