// Package trainer implements the shallow neural-network trainer: parallel
// stochastic gradient descent over a shared embedding matrix, with a
// hierarchical-softmax tree and/or a negative-sampling unigram table.
// CBOW and Skip-gram share a common worker scaffold and differ only in
// trainSentence.
package trainer

import (
	"runtime"

	"word2vec/werrors"
)

// Type selects the training objective.
type Type int

const (
	CBOW Type = iota
	SkipGram
)

func (t Type) String() string {
	if t == SkipGram {
		return "SKIP_GRAM"
	}
	return "CBOW"
}

// Config is the trainer's plain configuration struct. A fluent builder is
// out of scope; callers construct a Config directly and call Validate.
type Config struct {
	Type Type

	// LayerSize is the dimensionality L of each word vector. Default 100.
	LayerSize int

	// WindowSize is the maximum half-width W of the context window.
	// Default 5.
	WindowSize int

	// NumThreads is the number of parallel SGD workers. Default is the
	// host's hardware concurrency.
	NumThreads int

	// Iterations is the number of passes over the corpus. Default 5.
	Iterations int

	// NegativeSamples is the per-target negative draw count K. Default 0
	// (negative sampling disabled).
	NegativeSamples int

	// UseHierarchicalSoftmax enables the HS path update. Default false.
	UseHierarchicalSoftmax bool

	// DownSampleRate is the frequent-token subsampling threshold t.
	// Default 1e-3. Zero disables subsampling.
	DownSampleRate float64

	// InitialLearningRate is alpha-zero. Zero means "use the type's
	// default" (0.025 for Skip-gram, 0.05 for CBOW) at Validate time.
	InitialLearningRate float64

	// MinFrequency is forwarded to the vocabulary builder when Run
	// builds the vocabulary itself from a corpus.Source.
	MinFrequency int
}

// DefaultConfig returns a Config with every field set to its spec default
// for the given training type, except InitialLearningRate, which
// Validate fills in from the type if left zero.
func DefaultConfig(t Type) Config {
	return Config{
		Type:           t,
		LayerSize:      100,
		WindowSize:     5,
		NumThreads:     runtime.GOMAXPROCS(0),
		Iterations:     5,
		DownSampleRate: 1e-3,
	}
}

// Validate fills in zero-valued defaults (InitialLearningRate, which
// depends on Type, and NumThreads) and eagerly rejects out-of-range
// option values. It mutates c in place; calling it again on an already
// validated Config changes nothing. Run and Train call it themselves.
func (c *Config) Validate() error {
	if c.LayerSize <= 0 {
		return werrors.InvalidConfigf("layerSize must be positive, got %d", c.LayerSize)
	}
	if c.WindowSize <= 0 {
		return werrors.InvalidConfigf("windowSize must be positive, got %d", c.WindowSize)
	}
	if c.Iterations <= 0 {
		return werrors.InvalidConfigf("iterations must be positive, got %d", c.Iterations)
	}
	if c.NegativeSamples < 0 {
		return werrors.InvalidConfigf("negativeSamples must be non-negative, got %d", c.NegativeSamples)
	}
	if c.DownSampleRate < 0 {
		return werrors.InvalidConfigf("downSampleRate must be non-negative, got %v", c.DownSampleRate)
	}
	if c.MinFrequency < 0 {
		return werrors.InvalidConfigf("minFrequency must be non-negative, got %d", c.MinFrequency)
	}
	if c.NumThreads <= 0 {
		c.NumThreads = runtime.GOMAXPROCS(0)
		if c.NumThreads <= 0 {
			c.NumThreads = 1
		}
	}
	if c.InitialLearningRate == 0 {
		if c.Type == SkipGram {
			c.InitialLearningRate = 0.025
		} else {
			c.InitialLearningRate = 0.05
		}
	}
	if c.InitialLearningRate <= 0 {
		return werrors.InvalidConfigf("initialLearningRate must be positive, got %v", c.InitialLearningRate)
	}
	return nil
}
