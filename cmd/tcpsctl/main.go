// Command tcpsctl drives a tiered compressed-page store in-process for
// manual inspection: each of its alloc (with --free), reclaim and stats
// subcommands builds its own pool, drives it, and prints its bookkeeping.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
