package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"

	"word2vec/progress"
	"word2vec/vocab"
)

func buildVocab(t *testing.T, counts map[string]int, minFreq int) *vocab.Vocabulary {
	t.Helper()
	v, err := vocab.FromCounts(counts, minFreq)
	require.NoError(t, err)
	return v
}

func TestEncodeProducesOneCodePerToken(t *testing.T) {
	v := buildVocab(t, map[string]int{
		"the": 100, "of": 80, "and": 60, "a": 40, "in": 20, "rare": 5,
	}, 1)

	nodes, err := Encode(v, nil, nil)
	require.NoError(t, err)
	require.Len(t, nodes, v.Len())

	maxLen := v.Len() - 1
	for i := 0; i < v.Len(); i++ {
		e := v.Entry(i)
		n, ok := nodes[e.Token]
		require.True(t, ok)
		require.Equal(t, len(n.Code), len(n.Point)-1)
		require.LessOrEqual(t, len(n.Code), maxLen)
		require.Equal(t, v.Len()-2, n.Point[0], "path must start at the root sentinel")
	}
}

func TestEncodeEmptyVocabularyFails(t *testing.T) {
	v := buildVocab(t, map[string]int{}, 1)
	_, err := Encode(v, nil, nil)
	require.Error(t, err)
}

func TestEncodeSingleTokenVocabulary(t *testing.T) {
	v := buildVocab(t, map[string]int{"only": 5}, 1)
	nodes, err := Encode(v, nil, nil)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
}

func TestEncodePointsAreValidInternalOffsets(t *testing.T) {
	v := buildVocab(t, map[string]int{
		"a": 5, "b": 4, "c": 3, "d": 2, "e": 1,
	}, 1)

	nodes, err := Encode(v, nil, nil)
	require.NoError(t, err)

	// Every point read by a code bit, the leading root sentinel included,
	// must land in [0, |V|-1): the root is |V|-2 and every other internal
	// node offset lies below it.
	for _, n := range nodes {
		for d := 0; d < len(n.Code); d++ {
			require.GreaterOrEqual(t, n.Point[d], 0)
			require.Less(t, n.Point[d], v.Len()-1)
		}
	}
}

func TestEncodeCancellation(t *testing.T) {
	counts := make(map[string]int)
	for i := 0; i < 5000; i++ {
		counts[string(rune('a'+i%26))+string(rune('A'+i/26))] = i + 1
	}
	v := buildVocab(t, counts, 1)

	cancel := progress.NewCancelToken()
	cancel.Cancel()

	_, err := Encode(v, nil, cancel)
	require.Error(t, err)
}
