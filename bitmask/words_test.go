package bitmask_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seqguard/go-replay/bitmask"
	"github.com/seqguard/go-replay/bitmask/masktest"
)

func TestWords(t *testing.T) {
	masktest.TestMask(t, func(width uint64) bitmask.Mask {
		return bitmask.NewWords(width)
	})
}

func TestWordsZeroWidth(t *testing.T) {
	require.Panics(t, func() {
		bitmask.NewWords(0)
	})
}

func TestWordsWidthMultipleOf64(t *testing.T) {
	w := bitmask.NewWords(64)
	w.SetBit(63)
	w.Shl(1)
	require.True(t, w.Bit(64))
	w.Shl(1)
	require.False(t, w.Bit(64))
	require.Equal(t, 0, w.OnesCount())
}

func TestWordsOnesCount(t *testing.T) {
	w := bitmask.NewWords(300)
	for i := uint64(0); i < 300; i += 3 {
		w.SetBit(i)
	}
	require.Equal(t, 100, w.OnesCount())
	w.Shl(150)
	require.Equal(t, 51, w.OnesCount())
	w.Reset()
	require.Equal(t, 0, w.OnesCount())
}

func TestWordsString(t *testing.T) {
	w := bitmask.NewWords(100)
	w.SetBit(0)
	w.SetBit(64)
	require.Equal(t, "0x0000000000000001 0x0000000000000001", w.String())
}

func BenchmarkWordsShl(b *testing.B) {
	w := bitmask.NewWords(1024)
	for i := 0; i < b.N; i++ {
		w.SetBit(0)
		w.Shl(3)
	}
}
