package unigram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildTableHasFixedSize(t *testing.T) {
	tbl := Build([]int{10, 5, 1})
	require.Len(t, tbl.idx, Size)
}

func TestBuildEmptyCountsProducesZeroedTable(t *testing.T) {
	tbl := Build(nil)
	require.Len(t, tbl.idx, Size)
	require.Equal(t, int32(0), tbl.Sample(0))
}

func TestBuildIsMonotonicNonDecreasing(t *testing.T) {
	tbl := Build([]int{50, 30, 15, 5})
	prev := int32(0)
	for a := 0; a < Size; a += Size / 1000 {
		require.GreaterOrEqual(t, tbl.idx[a], prev)
		require.Less(t, int(tbl.idx[a]), 4)
		prev = tbl.idx[a]
	}
}

func TestBuildNeverIndexesPastLastEntry(t *testing.T) {
	counts := []int{1000, 1}
	tbl := Build(counts)
	for a := Size - 1000; a < Size; a++ {
		require.Less(t, int(tbl.idx[a]), len(counts))
	}
}

func TestBuildFavorsHighFrequencyEntries(t *testing.T) {
	// A single dominant token should occupy the overwhelming majority of
	// the table relative to a rare one.
	tbl := Build([]int{1_000_000, 1})
	zeros := 0
	for a := 0; a < Size; a += Size / 10000 {
		if tbl.idx[a] == 0 {
			zeros++
		}
	}
	require.Greater(t, zeros, 9900)
}

func TestSampleIndexingIsAlwaysInRange(t *testing.T) {
	tbl := Build([]int{7, 3, 2, 1})
	for _, r := range []int64{0, -1, 1 << 40, -(1 << 40), 123456789} {
		v := tbl.Sample(r)
		require.GreaterOrEqual(t, v, int32(0))
		require.Less(t, v, int32(4))
	}
}
