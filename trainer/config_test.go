package trainer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"word2vec/werrors"
)

func TestDefaultConfigFillsLearningRateByType(t *testing.T) {
	cbow := DefaultConfig(CBOW)
	require.NoError(t, cbow.Validate())
	require.Equal(t, 0.05, cbow.InitialLearningRate)

	sg := DefaultConfig(SkipGram)
	require.NoError(t, sg.Validate())
	require.Equal(t, 0.025, sg.InitialLearningRate)
}

func TestValidateRejectsOutOfRangeOptions(t *testing.T) {
	cases := []Config{
		{LayerSize: 0},
		{LayerSize: 10, WindowSize: 0},
		{LayerSize: 10, WindowSize: 5, Iterations: 0},
		{LayerSize: 10, WindowSize: 5, Iterations: 1, NegativeSamples: -1},
		{LayerSize: 10, WindowSize: 5, Iterations: 1, DownSampleRate: -1},
		{LayerSize: 10, WindowSize: 5, Iterations: 1, MinFrequency: -1},
	}
	for _, c := range cases {
		err := c.Validate()
		require.Error(t, err)
		require.True(t, werrors.IsKind(err, werrors.InvalidConfig))
	}
}

func TestValidateFillsDefaultNumThreads(t *testing.T) {
	c := DefaultConfig(CBOW)
	c.NumThreads = 0
	require.NoError(t, c.Validate())
	require.Greater(t, c.NumThreads, 0)
}
