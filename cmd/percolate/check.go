package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/percolation/sitefile"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [--] <n> [<row> <col>]...",
		Short: "Open the given sites on an n-grid and report",
		Long:  `check opens the given sites, in order, on an n-by-n grid and prints a report.

Put "--" before the numbers when any of them is negative, otherwise it is
read as a flag:

  percolate check -- 3 -1 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenarioFromArgs(args)
			if err != nil {
				return err
			}
			newLogger(cmd, a.cfg.Verbose).Debug("checking", "size", s.Size, "sites", len(s.Sites))

			rep, err := sitefile.Replay(s)
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), rep, a.cfg)
		},
	}
}

// scenarioFromArgs turns "n r1 c1 r2 c2 ..." into a Scenario.
func scenarioFromArgs(args []string) (*sitefile.Scenario, error) {
	nums := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d %q: %w", i+1, arg, sitefile.ErrMalformed)
		}
		nums[i] = v
	}
	rest := nums[1:]
	if len(rest)%2 != 0 {
		return nil, fmt.Errorf("row %d has no column: %w", rest[len(rest)-1], sitefile.ErrMalformed)
	}

	s := &sitefile.Scenario{Size: nums[0]}
	for i := 0; i < len(rest); i += 2 {
		s.Sites = append(s.Sites, sitefile.Site{Row: rest[i], Col: rest[i+1]})
	}

	return s, nil
}
