// Package unigram builds the fixed-size unigram^0.75 sampling table used
// for negative sampling during training.
package unigram

import "math"

// Size is the fixed number of entries in the table (10^8), per the
// classical word2vec implementation this module re-engineers.
const Size = 100_000_000

// Table is a flattened cumulative distribution over count^0.75, indexed
// by a PRNG-derived value in training.
type Table struct {
	idx []int32
}

// Build constructs the table from counts, which must be in the same
// order as the vocabulary (frequency descending): counts[i] is the
// count of the vocabulary entry with index i. Walking left to right, the
// table index advances through vocabulary entries in proportion to
// count(t)^0.75 / sum(count^0.75); the final entry is clamped so the
// table never indexes past len(counts)-1.
func Build(counts []int) *Table {
	n := len(counts)
	t := &Table{idx: make([]int32, Size)}
	if n == 0 {
		return t
	}

	var total float64
	for _, c := range counts {
		total += math.Pow(float64(c), 0.75)
	}

	i := 0
	d1 := math.Pow(float64(counts[0]), 0.75) / total
	for a := 0; a < Size; a++ {
		t.idx[a] = int32(i)
		if float64(a)/float64(Size) > d1 {
			i++
			if i >= n {
				i = n - 1
			} else {
				d1 += math.Pow(float64(counts[i]), 0.75) / total
			}
		}
	}
	return t
}

// Sample reads the table at the index derived from PRNG state r, per the
// trainer's index formula: (((r >> 16) mod Size) + Size) mod Size.
func (t *Table) Sample(r int64) int32 {
	idx := ((r>>16)%Size + Size) % Size
	return t.idx[idx]
}
