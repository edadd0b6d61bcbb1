// Package bitmask provides fixed-width bit windows addressed by offset.
//
// Offset 0 is the most recent position, larger offsets are older ones.
// Offsets in the closed range [0, width] are valid; anything beyond
// reads as unset and ignores writes.
package bitmask

// Mask is a fixed-width window of flags which can be aged with Shl.
type Mask interface {
	// Bit returns true if the flag at offset n is set.
	Bit(n uint64) bool
	// SetBit sets the flag at offset n.
	SetBit(n uint64)
	// Shl moves every flag from offset k to offset k+n, dropping flags
	// which end up past the width.
	Shl(n uint64)
}

var (
	_ Mask = &Words{}
	_ Mask = &Cells{}
)
