package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by every subcommand once PersistentPreRunE has run.
type app struct {
	v   *viper.Viper
	cfg config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "percolate",
		Short:         "Percolation on an n-by-n grid of sites",
		Long:          "percolate opens sites on an n-by-n grid and reports whether an open path links the top row to the bottom row.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(a.v, cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .percolate.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output on stderr")
	pf.StringP("format", "f", formatText, "report format: text or yaml")
	pf.BoolP("grid", "g", false, "append the final grid to text reports")
	_ = a.v.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = a.v.BindPFlag("format", pf.Lookup("format"))
	_ = a.v.BindPFlag("grid", pf.Lookup("grid"))

	root.AddCommand(newRunCmd(a), newCheckCmd(a))

	return root
}
