package sitefile

import (
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
	"gopkg.in/yaml.v3"
)

// Site is a 1-indexed grid coordinate.
type Site struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// UnmarshalYAML accepts both [row, col] and {row: r, col: c}.
func (s *Site) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var pair []int
		if err := value.Decode(&pair); err != nil {
			return fmt.Errorf("line %d: %w: %v", value.Line, ErrMalformed, err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: site needs 2 values, got %d: %w", value.Line, len(pair), ErrMalformed)
		}
		s.Row, s.Col = pair[0], pair[1]

		return nil
	case yaml.MappingNode:
		type plain Site
		var p plain
		if err := value.Decode(&p); err != nil {
			return fmt.Errorf("line %d: %w: %v", value.Line, ErrMalformed, err)
		}
		*s = Site(p)

		return nil
	default:
		return fmt.Errorf("line %d: site must be a pair or a mapping: %w", value.Line, ErrMalformed)
	}
}

// Scenario is a grid size plus the sites to open, in order.
type Scenario struct {
	Size  int    `yaml:"size"`
	Sites []Site `yaml:"sites"`
}

// Report summarises a replayed Scenario.
//
// PercolatedAt is the 1-based ordinal of the Open call that first made the
// system percolate, or 0 if it never did. Threshold is OpenSites / Size².
type Report struct {
	Size         int     `yaml:"size"`
	Attempted    int     `yaml:"attempted"`
	OpenSites    int     `yaml:"open_sites"`
	FullSites    int     `yaml:"full_sites"`
	Percolates   bool    `yaml:"percolates"`
	PercolatedAt int     `yaml:"percolated_at"`
	Threshold    float64 `yaml:"threshold"`

	// Grid is the final state; it is not serialised.
	Grid *percolation.Grid `yaml:"-"`
}
