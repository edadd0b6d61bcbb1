package bitmask

import "golang.org/x/exp/slices"

// Cells is a Mask stored as a sequence of single-bit cells.
// The newest offset is the last cell.
//
// Shl only appends, it never evicts old cells, so a long-lived Cells grows
// with every shift. Call Compact to drop cells which can no longer be read.
type Cells struct {
	cells []bool
	size  uint64
}

// NewCells returns a Cells holding size+1 zero cells, one per offset in [0, size].
// It panics if size is 0.
func NewCells(size uint64) *Cells {
	if size == 0 {
		panic("bitmask: size must be greater than 0")
	}
	return &Cells{
		cells: make([]bool, size+1),
		size:  size,
	}
}

// Width returns the largest valid offset.
func (c *Cells) Width() uint64 {
	return c.size
}

// Len returns the number of stored cells.
func (c *Cells) Len() int {
	return len(c.cells)
}

func (c *Cells) Bit(n uint64) bool {
	i, ok := c.index(n)
	if !ok {
		return false
	}
	return c.cells[i]
}

func (c *Cells) SetBit(n uint64) {
	i, ok := c.index(n)
	if !ok {
		return
	}
	c.cells[i] = true
}

func (c *Cells) Shl(n uint64) {
	if n > c.size {
		// everything aged out
		c.cells = c.cells[:c.size+1]
		for i := range c.cells {
			c.cells[i] = false
		}
		return
	}
	c.cells = slices.Grow(c.cells, int(n))
	for i := uint64(0); i < n; i++ {
		c.cells = append(c.cells, false)
	}
}

// Compact evicts the cells older than the width.
// Observable bits do not change.
func (c *Cells) Compact() {
	keep := int(c.size) + 1
	if len(c.cells) <= keep {
		return
	}
	c.cells = slices.Delete(c.cells, 0, len(c.cells)-keep)
}

func (c *Cells) index(n uint64) (int, bool) {
	if n > c.size {
		return 0, false
	}
	return len(c.cells) - int(n) - 1, true
}
