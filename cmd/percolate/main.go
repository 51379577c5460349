// Command percolate replays percolation scenarios and reports whether the
// grid percolates.
//
// Usage:
//
//	percolate run input20.txt
//	percolate run --format yaml --grid scenario.yaml
//	percolate check 3 1 1 2 1 3 1
//
// Configuration is read from .percolate.yaml (cwd, then $HOME), PERCOLATE_*
// environment variables and flags, in increasing priority.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
