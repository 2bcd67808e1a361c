package main

import (
	"fmt"

	"github.com/markmansi/tcps"
	"github.com/spf13/cobra"
)

var (
	statsSize  int
	statsCount int
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().IntVar(&statsSize, "size", 256, "chunk size in bytes requested per allocation")
	cmd.Flags().IntVar(&statsCount, "count", 4, "number of chunks to allocate before reporting")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Allocate chunks and print per-class pool statistics",
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	p, err := tcps.New(tcps.Config{})
	if err != nil {
		return fmt.Errorf("creating pool: %w", err)
	}

	for i := 0; i < statsCount; i++ {
		if _, err := p.Alloc(statsSize, tcps.HintDefault); err != nil {
			return fmt.Errorf("Alloc #%d: %w", i, err)
		}
	}

	if jsonOut {
		return printJSON(p.Stats())
	}
	printStats(p.Stats())
	return nil
}

func printStats(s tcps.PoolStats) {
	printInfo("pool bytes: %d\n", s.Bytes)
	printInfo("reclaim-set chunks: %d\n", s.ReclaimChunks)
	for i, c := range s.Classes {
		printInfo("class %d (%d bytes): %d pages, %d free chunks\n", i, c.Size, c.Pages, c.FreeChunks)
	}
}
