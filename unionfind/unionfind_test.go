package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidSize verifies that non-positive universes are rejected.
func TestNew_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		uf, err := unionfind.New(n)
		assert.Nil(t, uf)
		assert.ErrorIs(t, err, unionfind.ErrInvalidSize, "n=%d", n)
	}
}

// TestNew_Singletons checks the initial partition.
func TestNew_Singletons(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, uf.Len())
	assert.Equal(t, 5, uf.Count())

	for i := 0; i < 5; i++ {
		root, err := uf.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, root)

		size, err := uf.SizeOf(i)
		require.NoError(t, err)
		assert.Equal(t, 1, size)
	}
}

// TestIndexOutOfRange exercises every operation with bad ids.
func TestIndexOutOfRange(t *testing.T) {
	uf, err := unionfind.New(3)
	require.NoError(t, err)

	for _, bad := range []int{-1, 3, 42} {
		_, err = uf.Find(bad)
		assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)

		_, err = uf.SizeOf(bad)
		assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)

		_, err = uf.Union(0, bad)
		assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)
		_, err = uf.Union(bad, 0)
		assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)

		_, err = uf.Connected(bad, 1)
		assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)
		_, err = uf.Connected(1, bad)
		assert.ErrorIs(t, err, unionfind.ErrIndexOutOfRange)
	}
	// A failed call must leave the partition untouched.
	assert.Equal(t, 3, uf.Count())
}

// TestUnionConnected walks through a small sequence of merges.
func TestUnionConnected(t *testing.T) {
	uf, err := unionfind.New(10)
	require.NoError(t, err)

	steps := []struct {
		p, q   int
		merged bool
		count  int
	}{
		{4, 3, true, 9},
		{3, 8, true, 8},
		{6, 5, true, 7},
		{9, 4, true, 6},
		{2, 1, true, 5},
		{8, 9, false, 5}, // already connected through 4
		{5, 0, true, 4},
		{7, 2, true, 3},
		{6, 1, true, 2},
		{1, 0, false, 2},
	}
	for _, s := range steps {
		merged, err := uf.Union(s.p, s.q)
		require.NoError(t, err)
		assert.Equal(t, s.merged, merged, "Union(%d,%d)", s.p, s.q)
		assert.Equal(t, s.count, uf.Count(), "Count after Union(%d,%d)", s.p, s.q)
	}

	ok, err := uf.Connected(8, 9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uf.Connected(0, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uf.Connected(3, 7)
	require.NoError(t, err)
	assert.False(t, ok)

	size, err := uf.SizeOf(0)
	require.NoError(t, err)
	assert.Equal(t, 6, size) // {0,1,2,5,6,7}
	size, err = uf.SizeOf(9)
	require.NoError(t, err)
	assert.Equal(t, 4, size) // {3,4,8,9}
}

// TestSelfUnion confirms Union(p,p) is a no-op.
func TestSelfUnion(t *testing.T) {
	uf, err := unionfind.New(2)
	require.NoError(t, err)

	merged, err := uf.Union(1, 1)
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, 2, uf.Count())
}

// TestRandomAgainstNaive compares the forest with a naive label array
// over a deterministic random sequence of unions.
func TestRandomAgainstNaive(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(42))

	uf, err := unionfind.New(n)
	require.NoError(t, err)

	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	relabel := func(from, to int) {
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}

	for step := 0; step < 500; step++ {
		p, q := r.Intn(n), r.Intn(n)
		merged, err := uf.Union(p, q)
		require.NoError(t, err)
		assert.Equal(t, label[p] != label[q], merged)
		if label[p] != label[q] {
			relabel(label[q], label[p])
		}

		a, b := r.Intn(n), r.Intn(n)
		ok, err := uf.Connected(a, b)
		require.NoError(t, err)
		require.Equal(t, label[a] == label[b], ok, "step %d: Connected(%d,%d)", step, a, b)
	}

	// Every element is counted by exactly one root.
	distinct := make(map[int]struct{})
	total := 0
	for i := 0; i < n; i++ {
		root, err := uf.Find(i)
		require.NoError(t, err)
		if _, seen := distinct[root]; seen {
			continue
		}
		distinct[root] = struct{}{}
		size, err := uf.SizeOf(root)
		require.NoError(t, err)
		total += size
	}
	assert.Equal(t, n, total)
	assert.Equal(t, uf.Count(), len(distinct))
}
