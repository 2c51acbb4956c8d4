// Package model defines the immutable trained artifact produced by the
// trainer. File I/O (binary/text) and thrift/JSON externalization are
// out of scope here; a Model exposes only the three fields an external
// loader/writer needs to populate or consume.
package model

// Model is the vocabulary, layer size, and row-major flat vector array
// produced once by the trainer. It never mutates after construction.
type Model struct {
	// Vocab is the vocabulary in vocabulary order (the same order used
	// to index into Vectors).
	Vocab []string

	// LayerSize is L, the dimensionality of each word vector.
	LayerSize int

	// Vectors is the flat |Vocab|*LayerSize row-major array: the vector
	// for Vocab[i] occupies Vectors[i*LayerSize : (i+1)*LayerSize].
	Vectors []float64
}

// New builds a Model, panicking if vectors' length does not match
// len(vocab)*layerSize — that invariant must hold by construction for
// every caller inside this module.
func New(vocab []string, layerSize int, vectors []float64) *Model {
	if len(vectors) != len(vocab)*layerSize {
		panic("model: vectors length does not match len(vocab)*layerSize")
	}
	return &Model{Vocab: vocab, LayerSize: layerSize, Vectors: vectors}
}

// Row returns the slice of Vectors belonging to vocabulary index i. The
// caller must not retain it beyond the Model's lifetime if the Model is
// ever mutated by a caller outside this package (it never is inside).
func (m *Model) Row(i int) []float64 {
	return m.Vectors[i*m.LayerSize : (i+1)*m.LayerSize]
}

// Len returns the number of tokens in the model's vocabulary.
func (m *Model) Len() int { return len(m.Vocab) }
