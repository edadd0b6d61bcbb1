package bitmask

import (
	"fmt"
	"math/bits"
	"strings"
)

const wordBits = 64

// Words is a Mask stored as a big integer made of uint64 words.
// The most significant word comes first, so the last word holds the
// lowest offsets.
type Words struct {
	// width is the largest valid offset.
	width uint64
	words []uint64
	// topMask keeps the bits of words[0] which are inside the width.
	topMask uint64
}

// NewWords returns a zeroed Words of the given width.
// It panics if width is 0.
func NewWords(width uint64) *Words {
	if width == 0 {
		panic("bitmask: width must be greater than 0")
	}
	// offsets [0, width] need width+1 bits
	n := width/wordBits + 1
	topBits := width%wordBits + 1
	topMask := ^uint64(0)
	if topBits < wordBits {
		topMask = 1<<topBits - 1
	}
	return &Words{
		width:   width,
		words:   make([]uint64, n),
		topMask: topMask,
	}
}

// Width returns the largest valid offset.
func (w *Words) Width() uint64 {
	return w.width
}

func (w *Words) Bit(n uint64) bool {
	if n > w.width {
		return false
	}
	i, pos := w.locate(n)
	return w.words[i]&(1<<pos) != 0
}

func (w *Words) SetBit(n uint64) {
	if n > w.width {
		return
	}
	i, pos := w.locate(n)
	w.words[i] |= 1 << pos
}

func (w *Words) Shl(n uint64) {
	if n == 0 {
		return
	}
	if n > w.width {
		w.Reset()
		return
	}
	l := uint64(len(w.words))
	seg := n / wordBits
	pos := n % wordBits
	for i := uint64(0); i < l; i++ {
		var x uint64
		if i+seg < l {
			x |= w.words[i+seg] << pos
		}
		if pos != 0 && i+seg+1 < l {
			x |= w.words[i+seg+1] >> (wordBits - pos)
		}
		w.words[i] = x
	}
	w.words[0] &= w.topMask
}

// Reset clears every bit.
func (w *Words) Reset() {
	for i := range w.words {
		w.words[i] = 0
	}
}

// OnesCount returns the number of set bits.
func (w *Words) OnesCount() int {
	var total int
	for _, x := range w.words {
		total += bits.OnesCount64(x)
	}
	return total
}

func (w *Words) String() string {
	sb := strings.Builder{}
	for i, x := range w.words {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "0x%016x", x)
	}
	return sb.String()
}

func (w *Words) locate(n uint64) (int, uint64) {
	return len(w.words) - int(n/wordBits) - 1, n % wordBits
}
