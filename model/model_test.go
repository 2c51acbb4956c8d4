package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPanicsOnLengthMismatch(t *testing.T) {
	require.Panics(t, func() {
		New([]string{"a", "b"}, 3, []float64{1, 2, 3, 4})
	})
}

func TestNewAcceptsExactLength(t *testing.T) {
	m := New([]string{"a", "b"}, 3, make([]float64, 6))
	require.Equal(t, 2, m.Len())
	require.Equal(t, 3, m.LayerSize)
}

func TestRowSlicesCorrectRange(t *testing.T) {
	vectors := []float64{1, 2, 0, 3, 4, 0}
	m := New([]string{"a", "b"}, 3, vectors)

	require.Equal(t, []float64{1, 2, 0}, m.Row(0))
	require.Equal(t, []float64{3, 4, 0}, m.Row(1))
}

func TestRowAliasesUnderlyingVectors(t *testing.T) {
	vectors := []float64{1, 2, 3, 4}
	m := New([]string{"a", "b"}, 2, vectors)

	m.Row(0)[0] = 99
	require.Equal(t, float64(99), m.Vectors[0])
}

func TestLenMatchesVocabularySize(t *testing.T) {
	m := New([]string{"a", "b", "c"}, 4, make([]float64, 12))
	require.Equal(t, 3, m.Len())
}

func TestLenOfEmptyModelIsZero(t *testing.T) {
	m := New(nil, 5, nil)
	require.Equal(t, 0, m.Len())
}
