package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/seqguard/go-replay/bitmask"
	"github.com/seqguard/go-replay/replaytest"
)

var (
	simCount   uint64
	simDup     float64
	simReorder int
	simSeed    int64
)

func init() {
	f := simulateCmd.Flags()
	f.Uint64Var(&simCount, "count", 10000, "number of distinct sequence numbers to send")
	f.Float64Var(&simDup, "dup", 0.01, "probability of duplicating a sequence number")
	f.IntVar(&simReorder, "reorder", 8, "maximum distance a sequence number is moved back")
	f.Int64Var(&simSeed, "seed", 0, "random seed")
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a generated stream with duplicates and reordering through a detector",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDetector()
		if err != nil {
			return err
		}
		rng := rand.New(rand.NewSource(simSeed))
		seqs := replaytest.InOrder(1, simCount+1)
		seqs = replaytest.Reorder(rng, seqs, simReorder)
		seqs = replaytest.WithDuplicates(rng, seqs, simDup)

		tally := map[string]int{}
		cells, _ := d.Mask().(*bitmask.Cells)
		for i, seq := range seqs {
			latest, err := d.CheckAndAccept(seq)
			tally[verdict(latest, err)]++
			if cells != nil && i%4096 == 0 {
				cells.Compact()
			}
		}
		for _, k := range []string{"newest", "accepted", "duplicate", "out-of-range"} {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d\n", k, tally[k])
		}
		log.Infof("simulated %d arrivals, latest=%d", len(seqs), d.Latest())
		return nil
	},
}
