// Package searcher answers nearest-neighbor and analogy queries against
// a trained Model: it normalizes every row to unit length once, then
// serves cosine-similarity lookups and top-k matches against that
// normalized copy.
package searcher

import (
	"math"
	"sort"

	"word2vec/model"
	"word2vec/werrors"
)

// Match is one result of a top-k query: a vocabulary token and its
// cosine-similarity score against the query vector.
type Match struct {
	Token string
	Score float64
}

// NormalizedModel is model.Model's vector array with every row divided
// by its L2 norm, plus a token->row index for O(1) lookup. Built once by
// New and never mutated afterward.
type NormalizedModel struct {
	vocab     []string
	layerSize int
	vectors   []float64 // row-major, L2-normalized
	index     map[string]int
}

// New builds a NormalizedModel by normalizing m's vectors and indexing its
// vocabulary. m is not mutated.
func New(m *model.Model) *NormalizedModel {
	l := m.LayerSize
	n := len(m.Vocab)

	vectors := make([]float64, len(m.Vectors))
	for i := 0; i < n; i++ {
		src := m.Row(i)
		dst := vectors[i*l : (i+1)*l]
		var normSq float64
		for _, x := range src {
			normSq += x * x
		}
		norm := math.Sqrt(normSq)
		if norm == 0 {
			copy(dst, src)
			continue
		}
		for k := 0; k < l; k++ {
			dst[k] = src[k] / norm
		}
	}

	index := make(map[string]int, n)
	for i, tok := range m.Vocab {
		index[tok] = i
	}

	return &NormalizedModel{vocab: m.Vocab, layerSize: l, vectors: vectors, index: index}
}

// Contains reports whether word is inside the model's vocabulary.
func (s *NormalizedModel) Contains(word string) bool {
	_, ok := s.index[word]
	return ok
}

// RawVector returns the normalized vector for word, of length LayerSize.
// The caller must not mutate the returned slice. Fails with unknown-word
// if word is absent from the vocabulary.
func (s *NormalizedModel) RawVector(word string) ([]float64, error) {
	i, ok := s.index[word]
	if !ok {
		return nil, werrors.UnknownWordErr(word)
	}
	return s.row(i), nil
}

func (s *NormalizedModel) row(i int) []float64 {
	return s.vectors[i*s.layerSize : (i+1)*s.layerSize]
}

// LayerSize returns L, the dimensionality of every vector this searcher
// serves.
func (s *NormalizedModel) LayerSize() int { return s.layerSize }

// CosineDistance returns the dot product of the normalized rows for a
// and b (equivalently, their cosine similarity, since both rows are unit
// length).
func (s *NormalizedModel) CosineDistance(a, b string) (float64, error) {
	va, err := s.RawVector(a)
	if err != nil {
		return 0, err
	}
	vb, err := s.RawVector(b)
	if err != nil {
		return 0, err
	}
	return dot(va, vb), nil
}

func dot(a, b []float64) float64 {
	var d float64
	for i := range a {
		d += a[i] * b[i]
	}
	return d
}

// GetMatches returns the top maxMatches tokens by cosine similarity to
// word's normalized vector, in descending score order. Fails with
// unknown-word if word is absent.
func (s *NormalizedModel) GetMatches(word string, maxMatches int) ([]Match, error) {
	v, err := s.RawVector(word)
	if err != nil {
		return nil, err
	}
	return s.GetMatchesVec(v, maxMatches), nil
}

// GetMatchesVec returns the top maxMatches tokens by cosine similarity to
// vec, in descending score order. vec is used as-is, without
// normalizing it first — a deliberate deviation from the reference C
// implementation (spec §4.5). maxMatches is clamped to the vocabulary
// size.
func (s *NormalizedModel) GetMatchesVec(vec []float64, maxMatches int) []Match {
	n := len(s.vocab)
	if maxMatches > n {
		maxMatches = n
	}
	if maxMatches <= 0 {
		return nil
	}

	matches := make([]Match, n)
	order := make([]int, n)
	for i, tok := range s.vocab {
		matches[i] = Match{Token: tok, Score: dot(s.row(i), vec)}
		order[i] = i
	}

	// Ties break by ascending vocabulary order (the natural enumeration
	// order), so sort by (score desc, index asc) before truncating.
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if matches[a].Score != matches[b].Score {
			return matches[a].Score > matches[b].Score
		}
		return a < b
	})

	top := make([]Match, maxMatches)
	for i := 0; i < maxMatches; i++ {
		top[i] = matches[order[i]]
	}
	return top
}

// SemanticDifference captures d = normalized(a) - normalized(b) between
// two words, and answers GetMatches queries against normalized(word) - d
// for some other word.
type SemanticDifference struct {
	s    *NormalizedModel
	diff []float64
}

// Similarity returns the SemanticDifference between a and b: the
// directional relationship normalized(a) - normalized(b).
func (s *NormalizedModel) Similarity(a, b string) (*SemanticDifference, error) {
	va, err := s.RawVector(a)
	if err != nil {
		return nil, err
	}
	vb, err := s.RawVector(b)
	if err != nil {
		return nil, err
	}
	diff := make([]float64, s.layerSize)
	for i := range diff {
		diff[i] = va[i] - vb[i]
	}
	return &SemanticDifference{s: s, diff: diff}, nil
}

// GetMatches returns the top maxMatches tokens by cosine similarity to
// normalized(word) - d, where d is the difference this SemanticDifference
// captured.
func (d *SemanticDifference) GetMatches(word string, maxMatches int) ([]Match, error) {
	v, err := d.s.RawVector(word)
	if err != nil {
		return nil, err
	}
	target := make([]float64, d.s.layerSize)
	for i := range target {
		target[i] = v[i] - d.diff[i]
	}
	return d.s.GetMatchesVec(target, maxMatches), nil
}
