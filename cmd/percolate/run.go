package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/percolation/sitefile"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Replay a scenario file (algs4 text or YAML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd, a.cfg.Verbose)
			log.Debug("loading scenario", "path", args[0])

			s, err := sitefile.Load(args[0])
			if err != nil {
				return err
			}
			log.Debug("scenario loaded", "size", s.Size, "sites", len(s.Sites))

			rep, err := sitefile.Replay(s)
			if err != nil {
				return err
			}
			log.Debug("replay done", "open", rep.OpenSites, "percolates", rep.Percolates)

			return writeReport(cmd.OutOrStdout(), rep, a.cfg)
		},
	}
}

// writeReport renders rep in the configured format.
func writeReport(w io.Writer, rep *sitefile.Report, cfg config) error {
	if cfg.Format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("report: %w", err)
		}

		return enc.Close()
	}

	perc := "false"
	if rep.Percolates {
		perc = fmt.Sprintf("true (after site #%d)", rep.PercolatedAt)
	}
	_, err := fmt.Fprintf(w,
		"size:        %d\nsites read:  %d\nopen sites:  %d\nfull sites:  %d\nthreshold:   %.4f\npercolates:  %s\n",
		rep.Size, rep.Attempted, rep.OpenSites, rep.FullSites, rep.Threshold, perc)
	if err != nil {
		return err
	}
	if cfg.Grid {
		_, err = fmt.Fprintf(w, "\n%s", rep.Grid)
	}

	return err
}
