// Package progress defines the observer interface and cancellation token
// shared by the vocabulary, Huffman and training stages. It carries no
// exceptions-for-control-flow: cancellation is observed cooperatively and
// surfaced as a werrors.Error at the next checkpoint.
package progress

import "sync/atomic"

// Stage identifies which phase of building a model is in progress.
type Stage int

const (
	AcquireVocab Stage = iota
	FilterSortVocab
	CreateHuffmanEncoding
	TrainNeuralNetwork
)

func (s Stage) String() string {
	switch s {
	case AcquireVocab:
		return "ACQUIRE_VOCAB"
	case FilterSortVocab:
		return "FILTER_SORT_VOCAB"
	case CreateHuffmanEncoding:
		return "CREATE_HUFFMAN_ENCODING"
	case TrainNeuralNetwork:
		return "TRAIN_NEURAL_NETWORK"
	default:
		return "UNKNOWN"
	}
}

// Listener is notified of progress within a Stage. progress is in [0,1].
// Implementations must be safe for concurrent use: the training stage
// calls Update from multiple worker goroutines.
type Listener interface {
	Update(stage Stage, progress float64)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(stage Stage, progress float64)

func (f ListenerFunc) Update(stage Stage, progress float64) { f(stage, progress) }

// Noop discards all progress updates. It is the default Listener when
// none is supplied.
var Noop Listener = ListenerFunc(func(Stage, float64) {})

// CancelToken is a cooperative cancellation flag. Workers poll Cancelled
// at chunk/token boundaries; nothing preempts them mid-unit-of-work.
type CancelToken struct {
	cancelled atomic.Bool
}

// NewCancelToken returns a token that starts out not cancelled.
func NewCancelToken() *CancelToken {
	return &CancelToken{}
}

// Cancel requests cancellation. Safe to call more than once or
// concurrently.
func (c *CancelToken) Cancel() {
	if c == nil {
		return
	}
	c.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called. A nil token is never
// cancelled, so callers may pass nil to mean "no cancellation support".
func (c *CancelToken) Cancelled() bool {
	if c == nil {
		return false
	}
	return c.cancelled.Load()
}
