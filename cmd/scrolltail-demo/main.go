// Command scrolltail-demo is an interactive showcase for the scrolltail
// package: an endless list (or grid) backed by a fake paginated source with
// injectable latency and failures.
package main

import (
	"fmt"
	"os"

	"github.com/tuikit/scrolltail/internal/demo"
)

func main() {
	if err := demo.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// version is injected at build time via -ldflags.
var version = "dev"
