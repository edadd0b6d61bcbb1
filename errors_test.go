package replay_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/seqguard/go-replay"
)

func TestErrors(t *testing.T) {
	dup := errors.Wrap(replay.ErrDuplicate{Seq: 3}, "frame 7")
	require.True(t, replay.IsErrDuplicate(dup))
	require.False(t, replay.IsErrOutOfRange(dup))
	require.EqualError(t, dup, "frame 7: replay: sequence number 3 is duplicated")

	oor := errors.Wrap(replay.ErrOutOfRange{Seq: 9}, "frame 8")
	require.True(t, replay.IsErrOutOfRange(oor))
	require.False(t, replay.IsErrDuplicate(oor))

	var target replay.ErrOutOfRange
	require.ErrorAs(t, oor, &target)
	require.Equal(t, uint64(9), target.Seq)
}
