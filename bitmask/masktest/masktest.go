// Package masktest contains a conformance suite for bitmask.Mask implementations.
package masktest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seqguard/go-replay/bitmask"
)

// NewFunc creates a zeroed Mask with the given width.
type NewFunc = func(width uint64) bitmask.Mask

// TestMask runs every check in the suite against masks created by newMask.
func TestMask(t *testing.T, newMask NewFunc) {
	t.Run("Empty", func(t *testing.T) {
		m := newMask(70)
		for i := uint64(0); i <= 70; i++ {
			require.False(t, m.Bit(i), "offset %d", i)
		}
	})
	t.Run("SetGet", func(t *testing.T) {
		m := newMask(70)
		m.SetBit(0)
		m.SetBit(63)
		m.SetBit(64)
		for i := uint64(0); i <= 70; i++ {
			expected := i == 0 || i == 63 || i == 64
			require.Equal(t, expected, m.Bit(i), "offset %d", i)
		}
	})
	t.Run("ShiftZero", func(t *testing.T) {
		m := newMask(8)
		m.SetBit(3)
		m.Shl(0)
		require.True(t, m.Bit(3))
		require.False(t, m.Bit(4))
	})
	t.Run("ShiftOutside", func(t *testing.T) {
		m := newMask(4)
		m.SetBit(3)
		m.Shl(1)
		require.True(t, m.Bit(4))
		m.Shl(1)
		require.False(t, m.Bit(4))
		require.False(t, m.Bit(5))
	})
	t.Run("LastOffset", func(t *testing.T) {
		for _, width := range []uint64{1, 4, 63, 64, 65, 128} {
			m := newMask(width)
			m.SetBit(width)
			require.True(t, m.Bit(width), "fresh, width %d", width)
			m.Shl(width + 1)
			require.False(t, m.Bit(width), "after reset, width %d", width)
			m.SetBit(width)
			require.True(t, m.Bit(width), "after reset, width %d", width)
			for i := uint64(0); i < width; i++ {
				require.False(t, m.Bit(i), "width %d, offset %d", width, i)
			}
		}
	})
	t.Run("BitsOutsideRange", func(t *testing.T) {
		m := newMask(4)
		m.SetBit(5)
		for i := uint64(0); i <= 5; i++ {
			require.False(t, m.Bit(i), "offset %d", i)
		}
		require.False(t, m.Bit(1<<63))
	})
	t.Run("ShiftThroughWords", func(t *testing.T) {
		m := newMask(130)
		m.SetBit(63)
		require.True(t, m.Bit(63))
		m.Shl(1)
		require.True(t, m.Bit(64))
		m.SetBit(127)
		m.Shl(1)
		require.True(t, m.Bit(65))
		require.True(t, m.Bit(128))
		m.Shl(1)
		require.True(t, m.Bit(66))
		require.True(t, m.Bit(129))
	})
	t.Run("Large", func(t *testing.T) {
		m := newMask(2048)
		m.SetBit(2000)
		m.SetBit(1000)
		require.True(t, m.Bit(2000))
		require.True(t, m.Bit(1000))
		m.Shl(25)
		require.True(t, m.Bit(2025))
		require.True(t, m.Bit(1025))
		require.False(t, m.Bit(2000))
		require.False(t, m.Bit(1000))
	})
	t.Run("ShiftPastWidth", func(t *testing.T) {
		m := newMask(100)
		for i := uint64(0); i <= 100; i++ {
			m.SetBit(i)
		}
		m.Shl(101)
		for i := uint64(0); i <= 100; i++ {
			require.False(t, m.Bit(i), "offset %d", i)
		}
		// still usable afterwards
		m.SetBit(0)
		require.True(t, m.Bit(0))
	})
	t.Run("ShiftIsAging", func(t *testing.T) {
		const width = 200
		for _, k := range []uint64{0, 1, 31, 63, 64, 65, 127, 199, 200} {
			for _, n := range []uint64{1, 7, 63, 64, 65, 128, 199, 200, 201, 1000} {
				m := newMask(width)
				m.SetBit(k)
				m.Shl(n)
				for i := uint64(0); i <= width; i++ {
					expected := k+n <= width && i == k+n
					require.Equal(t, expected, m.Bit(i), "set %d, shift %d, offset %d", k, n, i)
				}
			}
		}
	})
}
