// Package percolation models an n-by-n grid of sites that are opened one at a
// time and answers, after every opening, whether the grid percolates (an
// open path links the top row to the bottom row) and which open sites are
// full (linked to the top row).
//
// What:
//
//   - Grid stores one open/blocked flag per site in a dense row-major slice.
//   - Two disjoint-set forests (package unionfind) are kept in lockstep:
//     – full: every site + virtual top + virtual bottom; answers Percolates.
//     – top:  every site + virtual top only;              answers IsFull.
//   - Synchronized wraps a Grid behind a single mutex for shared use.
//
// Why two forests:
//
//	With a single forest carrying both virtual nodes, a bottom-row site that
//	is linked to the bottom sentinel only would look full as soon as the
//	system percolates, because top ~ bottom ~ site. This is "backwash".
//	The top forest never sees the virtual bottom, so IsFull cannot be fooled.
//
//	    row 1   o # #          o full
//	    row 2   o # #          . open, not full
//	    row 3   o # .          # blocked
//
// Coordinates:
//
//	Public rows and columns are 1-indexed, in [1, n]. Internally site (row, col)
//	lives at index n*(row-1) + (col-1). The virtual top is n², the virtual
//	bottom (full forest only) is n²+1.
//
// Complexity:
//
//   - New:               O(n²) time and memory.
//   - Open:              amortised O(α(n²)), at most six unions per forest pair.
//   - IsOpen:            O(1).
//   - IsFull:            amortised O(α(n²)).
//   - NumberOfOpenSites: O(1).
//   - Percolates:        amortised O(α(n²)).
//
// Errors:
//
//   - ErrInvalidSize: New called with n ≤ 0. No Grid is returned.
//   - ErrOutOfBounds: row or col outside [1, n]. The call has no effect.
//
// Concurrency: Grid is single-threaded. Open performs several dependent
// mutations (flag, counter, up to six unions) that must look atomic to
// readers, so shared use goes through Synchronized, which guards every
// operation with the same mutex.
package percolation
