// Package unionfind provides a fixed-size disjoint-set (union-find) forest
// over the integer universe [0, n).
//
// What:
//
//   - UnionFind tracks a partition of n elements into disjoint sets.
//   - Union merges two sets; Connected reports whether two elements share a set.
//   - Find returns the canonical root of an element's set.
//
// Why:
//
//   - Dynamic connectivity: answer "are p and q linked?" while links keep arriving.
//   - Percolation: grid sites plus virtual boundary nodes (see package percolation).
//   - Kruskal-style MST construction and clustering.
//
// Representation:
//
//   - Two flat slices, parent[] and size[], indexed by element id. No per-node
//     allocation, no pointers.
//   - Union by size: the root of the smaller tree is attached under the root
//     of the larger one, so tree height stays O(log n).
//   - Path halving in Find: every visited node is re-pointed to its grandparent.
//
// Complexity:
//
//   - New:       O(n) time, O(n) memory.
//   - Find:      amortised O(α(n)).
//   - Union:     amortised O(α(n)).
//   - Connected: amortised O(α(n)).
//
// Errors:
//
//   - ErrInvalidSize:     New called with n ≤ 0.
//   - ErrIndexOutOfRange: an element id outside [0, n).
//
// Concurrency: a UnionFind is NOT safe for concurrent use. Even read-style
// queries (Find, Connected) rewrite parent links. Guard it with a single
// mutex if it must be shared.
package unionfind
