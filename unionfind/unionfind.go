package unionfind

import "fmt"

// UnionFind is a weighted quick-union forest with path halving.
//
// parent[i] == i marks a root. size[r] is meaningful only for roots and holds
// the number of elements in r's tree. count is the number of disjoint sets.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}

// New creates a UnionFind of n singleton sets {0}, {1}, ..., {n-1}.
// Returns ErrInvalidSize if n ≤ 0.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidSize)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the size of the universe.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// validate reports ErrIndexOutOfRange for ids outside [0, n).
func (uf *UnionFind) validate(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("element %d not in [0,%d): %w", p, len(uf.parent), ErrIndexOutOfRange)
	}

	return nil
}

// root walks to the root of p, halving the path as it goes.
// p must already be validated.
func (uf *UnionFind) root(p int) int {
	for uf.parent[p] != p {
		// Path halving: point p at its grandparent, then step there.
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

// Find returns the canonical root of the set containing p.
// Complexity: amortised O(α(n)).
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.root(p), nil
}

// Connected reports whether p and q belong to the same set.
// Complexity: amortised O(α(n)).
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	return uf.root(p) == uf.root(q), nil
}

// Union merges the sets containing p and q.
// It returns true if two distinct sets were merged and false if p and q were
// already connected.
//
// Steps:
//  1. Validate both ids.
//  2. Resolve both roots; equal roots mean nothing to do.
//  3. Attach the smaller tree under the larger root and add the sizes.
//
// Complexity: amortised O(α(n)).
func (uf *UnionFind) Union(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	rootP, rootQ := uf.root(p), uf.root(q)
	if rootP == rootQ {
		return false, nil
	}
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--

	return true, nil
}

// SizeOf returns the number of elements in the set containing p.
func (uf *UnionFind) SizeOf(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.size[uf.root(p)], nil
}
