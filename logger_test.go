package replay_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/seqguard/go-replay"
)

func TestSetLogLevel(t *testing.T) {
	defer replay.Logger.SetLevel(replay.Logger.GetLevel())
	require.Equal(t, "LOG", replay.LogEnv)

	require.NoError(t, replay.SetLogLevel(" Debug "))
	require.Equal(t, logrus.DebugLevel, replay.Logger.GetLevel())
	require.NoError(t, replay.SetLogLevel("warn"))
	require.Equal(t, logrus.WarnLevel, replay.Logger.GetLevel())
	require.Error(t, replay.SetLogLevel("loud"))
	require.Equal(t, logrus.WarnLevel, replay.Logger.GetLevel())
}
