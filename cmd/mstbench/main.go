// Command mstbench times uniform-weight Prim MST construction over a fixed
// sweep of complete-graph sizes.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/mstbench/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
