// Package replaytest contains helpers for testing replay detection:
// stream generators and a reference model of the detector.
package replaytest

import (
	"math/rand"

	"golang.org/x/exp/slices"
)

// InOrder returns the sequence numbers in [from, to).
func InOrder(from, to uint64) []uint64 {
	if to <= from {
		return nil
	}
	out := make([]uint64, 0, to-from)
	for x := from; x < to; x++ {
		out = append(out, x)
	}
	return out
}

// WithDuplicates returns a copy of seqs where each element is followed by a copy
// of itself with probability p.
// Duplicates are delivered immediately, so they are always inside the window.
func WithDuplicates(rng *rand.Rand, seqs []uint64, p float64) []uint64 {
	out := make([]uint64, 0, len(seqs))
	for _, x := range seqs {
		out = append(out, x)
		if rng.Float64() < p {
			out = append(out, x)
		}
	}
	return out
}

// Reorder returns a copy of seqs shuffled locally: each element is swapped
// with one at most depth positions after it.
func Reorder(rng *rand.Rand, seqs []uint64, depth int) []uint64 {
	out := slices.Clone(seqs)
	if depth <= 0 {
		return out
	}
	for i := range out {
		j := i + rng.Intn(depth+1)
		if j >= len(out) {
			j = len(out) - 1
		}
		out[i], out[j] = out[j], out[i]
	}
	return out
}
