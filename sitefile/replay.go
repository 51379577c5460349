package sitefile

import (
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

// Replay builds a Grid of s.Size and opens s.Sites in order.
// The first failing site aborts the replay; its error is wrapped with the
// site's 1-based ordinal and matches percolation.ErrOutOfBounds.
// Complexity: O(len(Sites)·α(n²) + n²).
func Replay(s *Scenario) (*Report, error) {
	g, err := percolation.New(s.Size)
	if err != nil {
		return nil, fmt.Errorf("sitefile: %w", err)
	}

	rep := &Report{Size: s.Size, Grid: g}
	for i, site := range s.Sites {
		if err := g.Open(site.Row, site.Col); err != nil {
			return nil, fmt.Errorf("sitefile: site #%d: %w", i+1, err)
		}
		rep.Attempted++
		if rep.PercolatedAt == 0 && g.Percolates() {
			rep.PercolatedAt = i + 1
		}
	}

	rep.OpenSites = g.NumberOfOpenSites()
	rep.FullSites = g.FullSites()
	rep.Percolates = g.Percolates()
	rep.Threshold = float64(rep.OpenSites) / float64(s.Size*s.Size)

	return rep, nil
}
