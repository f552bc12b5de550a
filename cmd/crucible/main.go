// Command crucible reads a grid of single-digit cell costs and prints the
// cheapest top-left to bottom-right route under a run-length rule.
//
// Usage:
//
//	crucible solve [file]              # basic rule, prints "Answer: N"
//	crucible solve --variant ultra     # a named variant from the config
//	crucible solve --min-run 2 --max-run 5
//	crucible all [file]                # every configured variant, concurrently
//
// The grid is read from file, or from stdin when file is absent or "-".
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
