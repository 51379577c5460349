package percolation

import "sync"

// Synchronized guards a Grid with one mutex so it can be shared across
// goroutines.
//
// A plain sync.Mutex is used for queries as well: IsFull and Percolates
// rewrite parent links inside the forests, so they are writers too.
type Synchronized struct {
	mu   sync.Mutex
	grid *Grid
}

// NewSynchronized creates a shared n-by-n Grid.
// Returns ErrInvalidSize if n ≤ 0.
func NewSynchronized(n int) (*Synchronized, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}

	return &Synchronized{grid: g}, nil
}

// Size returns n. The side length never changes, so no lock is taken.
func (s *Synchronized) Size() int {
	return s.grid.Size()
}

// Open opens site (row, col) under the lock.
func (s *Synchronized) Open(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.Open(row, col)
}

// IsOpen reports whether site (row, col) is open.
func (s *Synchronized) IsOpen(row, col int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.IsOpen(row, col)
}

// IsFull reports whether site (row, col) is full.
func (s *Synchronized) IsFull(row, col int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.IsFull(row, col)
}

// NumberOfOpenSites returns the number of open sites.
func (s *Synchronized) NumberOfOpenSites() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.NumberOfOpenSites()
}

// Percolates reports whether the system percolates.
func (s *Synchronized) Percolates() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.Percolates()
}

// Snapshot returns the open-site count and percolation state observed under
// a single lock acquisition, so the two values always agree.
func (s *Synchronized) Snapshot() (openSites int, percolates bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.NumberOfOpenSites(), s.grid.Percolates()
}

// String renders the grid under the lock. See Grid.String.
func (s *Synchronized) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid.String()
}
