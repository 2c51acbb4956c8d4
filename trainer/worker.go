package trainer

import (
	"math"
	"sync/atomic"

	"word2vec/progress"
	"word2vec/werrors"
)

// learningRateUpdateFrequency is the number of in-vocabulary tokens a
// worker processes between alpha refreshes.
const learningRateUpdateFrequency = 10_000

// maxSentenceLength is the chunk size sentences are split into before
// being handed to trainSentence.
const maxSentenceLength = 1_000

// workerState is everything local to one worker: its own PRNG stream,
// current learning rate, word-count bookkeeping for the alpha schedule,
// and scratch buffers. Nothing here is shared with other workers.
type workerState struct {
	rng           int64
	alpha         float64
	wordCount     int64
	lastWordCount int64

	neu1  []float64
	neu1e []float64
}

func newWorkerState(net *network, workerIndex int) *workerState {
	return &workerState{
		rng:   int64(workerIndex),
		alpha: net.cfg.InitialLearningRate,
		neu1:  make([]float64, net.cfg.LayerSize),
		neu1e: make([]float64, net.cfg.LayerSize),
	}
}

// trainPartition processes every sentence in sentences[p.Start:p.End]
// once, applying subsampling, alpha refreshes, and cancellation checks at
// chunk boundaries, and handing each chunk to trainFn. actualWordCount
// accumulates the worker's running total so the alpha schedule converges
// across all workers and iterations.
func trainPartition(net *network, ws *workerState, sentences [][]int, p partition, actualWordCount *int64, listener progress.Listener, cancel *progress.CancelToken, trainFn func(*network, *workerState, []int)) error {
	chunk := make([]int, 0, maxSentenceLength)

	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		if cancel.Cancelled() {
			return werrors.ErrCancelled
		}
		if ws.wordCount-ws.lastWordCount > learningRateUpdateFrequency {
			refreshAlpha(net, ws, actualWordCount, listener)
		}
		trainFn(net, ws, chunk)
		chunk = chunk[:0]
		return nil
	}

	for s := p.Start; s < p.End; s++ {
		sentence := sentences[s]
		for _, idx := range sentence {
			ws.wordCount++
			if keep, nextRng := net.subsample(idx, ws.rng); keep {
				ws.rng = nextRng
				chunk = append(chunk, idx)
				if len(chunk) >= maxSentenceLength {
					if err := flush(); err != nil {
						return err
					}
				}
			} else {
				ws.rng = nextRng
			}
		}
		// One extra word-count increment per sentence, for the absent
		// end-of-sentence marker.
		ws.wordCount++
		if err := flush(); err != nil {
			return err
		}
	}

	atomic.AddInt64(actualWordCount, ws.wordCount-ws.lastWordCount)
	ws.lastWordCount = ws.wordCount
	return nil
}

// subsample applies the frequent-word down-sampling test to vocabulary
// index idx, returning whether to keep it along with the advanced PRNG
// state. When DownSampleRate is zero, every token is kept and rng is
// returned unchanged.
func (net *network) subsample(idx int, rng int64) (bool, int64) {
	t := net.cfg.DownSampleRate
	if t <= 0 {
		return true, rng
	}
	count := float64(net.v.Entry(idx).Count)
	total := t * float64(net.numTrainedTokens)
	pKeep := (math.Sqrt(count/total) + 1) * total / count

	rng = nextRandom(rng)
	threshold := float64(uint64(rng)&0xFFFF) / 65536
	return pKeep >= threshold, rng
}

// refreshAlpha atomically folds ws's pending word-count delta into
// actualWordCount, then recomputes alpha from the fresh global total,
// linearly decaying towards a floor of initialLearningRate * 1e-4.
func refreshAlpha(net *network, ws *workerState, actualWordCount *int64, listener progress.Listener) {
	current := atomic.AddInt64(actualWordCount, ws.wordCount-ws.lastWordCount)
	ws.lastWordCount = ws.wordCount

	denom := float64(net.cfg.Iterations) * float64(net.numTrainedTokens)
	ws.alpha = net.cfg.InitialLearningRate * math.Max(1-float64(current)/denom, 1e-4)

	listener.Update(progress.TrainNeuralNetwork, float64(current)/(denom+1))
}
