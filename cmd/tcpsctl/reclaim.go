package main

import (
	"fmt"

	"github.com/markmansi/tcps"
	"github.com/spf13/cobra"
)

var (
	reclaimSize      int
	reclaimCount     int
	reclaimRetries   int
	reclaimFailFirst int
)

func init() {
	cmd := newReclaimCmd()
	cmd.Flags().IntVar(&reclaimSize, "size", 256, "chunk size in bytes requested per allocation")
	cmd.Flags().IntVar(&reclaimCount, "count", 1, "number of chunks to allocate and leave live before reclaiming")
	cmd.Flags().IntVar(&reclaimRetries, "retries", 8, "retry budget passed to ReclaimOne")
	cmd.Flags().IntVar(&reclaimFailFirst, "fail-first", 0, "make the eviction callback refuse this many calls before it starts succeeding")
	rootCmd.AddCommand(cmd)
}

func newReclaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reclaim",
		Short: "Allocate live chunks, then drive one round of page reclamation",
		Long: `reclaim allocates --count chunks of --size bytes and leaves them live
(unfree), installs a demonstration eviction callback that frees whatever
chunk it is handed, and calls ReclaimOne with --retries. --fail-first lets
the callback refuse its first N calls, to exercise the retry-and-restore
path.

Example:
  tcpsctl reclaim --size 256 --count 1 --fail-first 2 --retries 4`,
		RunE: runReclaim,
	}
}

func runReclaim(cmd *cobra.Command, args []string) error {
	var evictCalls int
	var p *tcps.Pool

	pool, err := tcps.New(tcps.Config{
		Ops: &tcps.Ops{
			Evict: func(h tcps.Handle) error {
				evictCalls++
				if evictCalls <= reclaimFailFirst {
					printInfo("evict refused for handle %#x (call %d)\n", uintptr(h), evictCalls)
					return fmt.Errorf("demonstration refusal (call %d of %d)", evictCalls, reclaimFailFirst)
				}
				printInfo("evicting handle %#x\n", uintptr(h))
				p.Free(h)
				return nil
			},
		},
	})
	if err != nil {
		return fmt.Errorf("creating pool: %w", err)
	}
	p = pool

	for i := 0; i < reclaimCount; i++ {
		if _, err := p.Alloc(reclaimSize, tcps.HintDefault); err != nil {
			return fmt.Errorf("Alloc #%d: %w", i, err)
		}
	}

	printInfo("before reclaim:\n")
	printStats(p.Stats())

	err = p.ReclaimOne(reclaimRetries)
	switch err {
	case nil:
		printInfo("reclaim: ok\n")
	case tcps.ErrNoEvict:
		printInfo("reclaim: no eviction candidate\n")
	case tcps.ErrExhausted:
		printInfo("reclaim: retry budget exhausted\n")
	default:
		return fmt.Errorf("ReclaimOne: %w", err)
	}

	printInfo("after reclaim:\n")
	if jsonOut {
		return printJSON(p.Stats())
	}
	printStats(p.Stats())
	return nil
}
