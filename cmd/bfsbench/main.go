// bfsbench times the BFS engines against each other and checks that they
// agree with the sequential reference.
//
// Usage:
//
//	bfsbench suite   [--config suite.yaml] [--output-dir out]
//	bfsbench compare [--vertices 1000 --rarity 10 | --file edges.txt] [--engines sequential,level,pool:4]
//	bfsbench version
//
// Global flags: --log-level, --log-format, --trace, --metrics-file.
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
