package trainer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"word2vec/corpus"
	"word2vec/progress"
	"word2vec/werrors"
)

func sampleCorpus() corpus.Slice {
	return corpus.Slice{
		{"the", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog"},
		{"the", "dog", "barks", "at", "the", "fox"},
		{"a", "quick", "fox", "runs", "from", "the", "lazy", "dog"},
		{"the", "fox", "and", "the", "dog", "are", "friends", "in", "the", "end"},
	}
}

func TestRunProducesModelWithCorrectShape(t *testing.T) {
	cfg := DefaultConfig(CBOW)
	cfg.LayerSize = 8
	cfg.Iterations = 2
	cfg.NumThreads = 1
	cfg.UseHierarchicalSoftmax = true
	cfg.MinFrequency = 1

	m, err := Run(cfg, sampleCorpus(), nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, len(m.Vocab)*cfg.LayerSize, len(m.Vectors))
	require.Equal(t, cfg.LayerSize, m.LayerSize)
}

func TestRunSkipGramWithNegativeSampling(t *testing.T) {
	cfg := DefaultConfig(SkipGram)
	cfg.LayerSize = 6
	cfg.Iterations = 2
	cfg.NumThreads = 1
	cfg.NegativeSamples = 3
	cfg.MinFrequency = 1

	m, err := Run(cfg, sampleCorpus(), nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, len(m.Vocab)*cfg.LayerSize, len(m.Vectors))
}

func TestRunEmptyVocabularyFails(t *testing.T) {
	cfg := DefaultConfig(CBOW)
	cfg.MinFrequency = 100
	_, err := Run(cfg, sampleCorpus(), nil, nil, nil)
	require.Error(t, err)
	require.True(t, werrors.IsKind(err, werrors.EmptyVocabulary))
}

func TestRunSingleThreadIsDeterministic(t *testing.T) {
	cfg := DefaultConfig(CBOW)
	cfg.LayerSize = 10
	cfg.Iterations = 3
	cfg.NumThreads = 1
	cfg.UseHierarchicalSoftmax = true
	cfg.NegativeSamples = 2
	cfg.MinFrequency = 1

	m1, err := Run(cfg, sampleCorpus(), nil, nil, nil)
	require.NoError(t, err)
	m2, err := Run(cfg, sampleCorpus(), nil, nil, nil)
	require.NoError(t, err)

	require.Equal(t, m1.Vocab, m2.Vocab)
	require.Equal(t, m1.Vectors, m2.Vectors)
}

func TestRunCancellationBeforeTrainingNeverTrains(t *testing.T) {
	cfg := DefaultConfig(CBOW)
	cfg.MinFrequency = 1

	cancel := progress.NewCancelToken()
	cancel.Cancel()

	_, err := Run(cfg, sampleCorpus(), nil, cancel, nil)
	require.Error(t, err)
	require.True(t, werrors.IsKind(err, werrors.Cancelled))
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := Config{LayerSize: -1}
	_, err := Run(cfg, sampleCorpus(), nil, nil, nil)
	require.Error(t, err)
	require.True(t, werrors.IsKind(err, werrors.InvalidConfig))
}
