// Package sitefile reads percolation scenarios and replays them against a
// percolation.Grid.
//
// Formats:
//
//   - Text (algs4 style): the grid size n followed by whitespace-separated
//     row/col pairs, one site per pair, in opening order.
//
//     3
//     1 1
//     2 1
//     3 1
//
//   - YAML: a document with the size and a list of sites. A site is either a
//     [row, col] pair or a {row, col} mapping.
//
//     size: 3
//     sites:
//     - [1, 1]
//     - {row: 2, col: 1}
//
// Replay opens the sites in order and records when the system first
// percolates. It is deterministic: the same scenario always yields the same
// Report.
//
// Errors:
//
//   - ErrMalformed: unparsable input (bad token, dangling row, bad site shape).
//   - ErrEmpty:     no size header.
//   - percolation.ErrInvalidSize / percolation.ErrOutOfBounds, wrapped with the
//     site ordinal, from Replay.
package sitefile
