// Package replay detects duplicated and replayed sequence numbers in a
// stream whose counter never wraps around.
//
// A Detector remembers which of the last WindowSize sequence numbers behind
// the highest accepted one were seen. Anything older, or above MaxSeq,
// is rejected with ErrOutOfRange. Anything seen before is rejected with
// ErrDuplicate.
//
// A Detector tracks exactly one stream and is not safe for concurrent use.
// Wrap it with NewLocked when several goroutines feed the same stream.
package replay

import "github.com/seqguard/go-replay/bitmask"

// Mask is the bit window a Detector records seen sequence numbers in.
type Mask = bitmask.Mask

// Checker decides whether a sequence number may be accepted and records it if so.
type Checker interface {
	// CheckAndAccept returns true if seq became the highest accepted sequence number.
	CheckAndAccept(seq uint64) (bool, error)
}
