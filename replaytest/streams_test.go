package replaytest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/seqguard/go-replay"
)

func TestInOrder(t *testing.T) {
	require.Equal(t, []uint64{3, 4, 5}, InOrder(3, 6))
	require.Empty(t, InOrder(6, 6))
	require.Empty(t, InOrder(7, 6))
}

func TestReorder(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	in := InOrder(0, 1000)
	out := Reorder(rng, in, 5)
	require.Len(t, out, len(in))
	require.Equal(t, InOrder(0, 1000), in, "input must not be modified")
	sorted := slices.Clone(out)
	slices.Sort(sorted)
	require.Equal(t, in, sorted)
}

func TestWithDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	in := InOrder(0, 1000)
	require.Equal(t, in, WithDuplicates(rng, in, 0))
	out := WithDuplicates(rng, in, 1)
	require.Len(t, out, 2*len(in))
	for i := range in {
		require.Equal(t, in[i], out[2*i])
		require.Equal(t, in[i], out[2*i+1])
	}
}

func TestMirror(t *testing.T) {
	m := NewMirror(100, 10)
	latest, err := m.CheckAndAccept(0)
	require.NoError(t, err)
	require.True(t, latest)
	_, err = m.CheckAndAccept(0)
	require.Equal(t, replay.ErrDuplicate{Seq: 0}, err)
	latest, err = m.CheckAndAccept(20)
	require.NoError(t, err)
	require.True(t, latest)
	_, err = m.CheckAndAccept(10)
	require.Equal(t, replay.ErrOutOfRange{Seq: 10}, err)
	latest, err = m.CheckAndAccept(11)
	require.NoError(t, err)
	require.False(t, latest)
	_, err = m.CheckAndAccept(101)
	require.Equal(t, replay.ErrOutOfRange{Seq: 101}, err)
	require.Equal(t, uint64(20), m.Latest())
}
