package main

import (
	"fmt"

	"github.com/markmansi/tcps"
	"github.com/spf13/cobra"
)

var (
	allocSize  int
	allocCount int
	allocFree  int
)

func init() {
	cmd := newAllocCmd()
	cmd.Flags().IntVar(&allocSize, "size", 256, "chunk size in bytes requested per allocation")
	cmd.Flags().IntVar(&allocCount, "count", 4, "number of chunks to allocate")
	cmd.Flags().IntVar(&allocFree, "free", 0, "number of the allocated chunks to free again, oldest first")
	rootCmd.AddCommand(cmd)
}

func newAllocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alloc",
		Short: "Allocate chunks from a fresh pool and report its bookkeeping",
		Long: `alloc builds a pool with the reference configuration, allocates --count
chunks of --size bytes each, optionally frees the first --free of them, and
prints the resulting per-class statistics.

Example:
  tcpsctl alloc --size 256 --count 40 --free 10`,
		RunE: runAlloc,
	}
}

func runAlloc(cmd *cobra.Command, args []string) error {
	if allocFree > allocCount {
		return fmt.Errorf("--free (%d) cannot exceed --count (%d)", allocFree, allocCount)
	}

	p, err := tcps.New(tcps.Config{})
	if err != nil {
		return fmt.Errorf("creating pool: %w", err)
	}
	defer p.Close()

	handles := make([]tcps.Handle, 0, allocCount)
	for i := 0; i < allocCount; i++ {
		h, err := p.Alloc(allocSize, tcps.HintDefault)
		if err != nil {
			return fmt.Errorf("Alloc #%d: %w", i, err)
		}
		handles = append(handles, h)
		printInfo("allocated handle %#x\n", uintptr(h))
	}
	for i := 0; i < allocFree; i++ {
		p.Free(handles[i])
		printInfo("freed handle %#x\n", uintptr(handles[i]))
	}
	// Leave any handles above allocFree live while reporting.
	var out error
	if jsonOut {
		out = printJSON(p.Stats())
	} else {
		printStats(p.Stats())
	}

	// Close panics if live handles remain, so free the rest before returning.
	for i := allocFree; i < len(handles); i++ {
		p.Free(handles[i])
	}
	return out
}
