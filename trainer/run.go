package trainer

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"word2vec/corpus"
	"word2vec/gopool"
	"word2vec/huffman"
	"word2vec/log"
	"word2vec/model"
	"word2vec/progress"
	"word2vec/unigram"
	"word2vec/vocab"
	"word2vec/werrors"
)

// Run executes the full pipeline spec.md describes: vocabulary build,
// Huffman encoding, unigram table construction, then the neural network
// training loop, and returns the resulting Model. Run builds its own
// vocabulary from sentences via cfg.MinFrequency; callers that already
// have a Vocabulary should use Train instead. cfg need not have been
// Validate'd; Run validates it.
func Run(cfg Config, sentences corpus.Source, listener progress.Listener, cancel *progress.CancelToken, logger log.Logger) (*model.Model, error) {
	if listener == nil {
		listener = progress.Noop
	}
	if logger == nil {
		logger = log.DefaultLogger
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("acquiring vocabulary (minFrequency=%d)", cfg.MinFrequency)
	listener.Update(progress.AcquireVocab, 0.0)
	materialized, err := corpus.Materialize(sentences)
	if err != nil {
		return nil, werrors.IOErrorWrap(err)
	}

	listener.Update(progress.FilterSortVocab, 0.0)
	v, err := vocab.Build(materialized, cfg.MinFrequency)
	if err != nil {
		return nil, err
	}
	if v.Len() == 0 {
		return nil, werrors.ErrEmptyVocabulary
	}

	return Train(cfg, v, materialized, listener, cancel, logger)
}

// Train runs Huffman encoding, unigram table construction, and the
// neural network training loop over an already-built Vocabulary and a
// materialized corpus. cfg need not have been Validate'd; Train
// validates it (Run passes it an already validated cfg).
func Train(cfg Config, v *vocab.Vocabulary, sentences corpus.Slice, listener progress.Listener, cancel *progress.CancelToken, logger log.Logger) (*model.Model, error) {
	if listener == nil {
		listener = progress.Noop
	}
	if logger == nil {
		logger = log.DefaultLogger
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if v.Len() == 0 {
		return nil, werrors.ErrEmptyVocabulary
	}

	logger.Info("building huffman encoding for %d tokens", v.Len())
	nodes, err := huffman.Encode(v, listener, cancel)
	if err != nil {
		return nil, err
	}

	var table *unigram.Table
	if cfg.NegativeSamples > 0 {
		counts := make([]int, v.Len())
		for i := 0; i < v.Len(); i++ {
			counts[i] = v.Entry(i).Count
		}
		table = unigram.Build(counts)
	}

	if cancel.Cancelled() {
		return nil, werrors.ErrCancelled
	}

	net := newNetwork(cfg, v, nodes, table, len(sentences))

	encoded := encodeSentences(v, sentences)

	trainFn := trainSentenceCBOW
	if cfg.Type == SkipGram {
		trainFn = trainSentenceSkipGram
	}

	logger.Info("training %s: |V|=%d L=%d threads=%d iterations=%d", cfg.Type, v.Len(), cfg.LayerSize, cfg.NumThreads, cfg.Iterations)
	listener.Update(progress.TrainNeuralNetwork, 0.0)

	var actualWordCount int64
	parts := partitionSentences(len(encoded), cfg.NumThreads)

	if err := runIterations(net, encoded, parts, &actualWordCount, listener, cancel, trainFn, logger); err != nil {
		return nil, err
	}

	return model.New(tokenList(v), cfg.LayerSize, net.syn0), nil
}

// runIterations launches cfg.Iterations outer passes, each spawning one
// fresh worker per partition in parts (matching the reference
// implementation's per-iteration thread respawn, which is why each
// worker's PRNG stream restarts from its worker index every iteration).
// A single-threaded run takes the errgroup path; multi-threaded runs use
// gopool, draining with a WaitGroup the same way gopool/pool_test.go
// drains its task batches.
func runIterations(net *network, encoded [][]int, parts []partition, actualWordCount *int64, listener progress.Listener, cancel *progress.CancelToken, trainFn func(*network, *workerState, []int), logger log.Logger) error {
	var pool gopool.Pool
	if net.cfg.NumThreads > 1 {
		pool = gopool.NewPool("trainer", int32(net.cfg.NumThreads), gopool.NewConfig())
	}

	for iter := 0; iter < net.cfg.Iterations; iter++ {
		if cancel.Cancelled() {
			return werrors.ErrCancelled
		}

		if pool == nil {
			var g errgroup.Group
			for i, p := range parts {
				i, p := i, p
				g.Go(func() error {
					ws := newWorkerState(net, i)
					return trainPartition(net, ws, encoded, p, actualWordCount, listener, cancel, trainFn)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			continue
		}

		var wg sync.WaitGroup
		errs := make([]error, len(parts))
		for i, p := range parts {
			i, p := i, p
			wg.Add(1)
			pool.Go(func() {
				defer wg.Done()
				ws := newWorkerState(net, i)
				errs[i] = trainPartition(net, ws, encoded, p, actualWordCount, listener, cancel, trainFn)
			})
		}
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				return err
			}
		}

		logger.Debug("iteration %d/%d complete, actualWordCount=%d", iter+1, net.cfg.Iterations, *actualWordCount)
	}
	return nil
}

// encodeSentences maps every sentence's tokens to vocabulary indices,
// dropping out-of-vocabulary tokens entirely (spec §4.4.6: "Tokens not in
// the vocabulary are dropped before this test").
func encodeSentences(v *vocab.Vocabulary, sentences corpus.Slice) [][]int {
	encoded := make([][]int, len(sentences))
	for i, sentence := range sentences {
		row := make([]int, 0, len(sentence))
		for _, tok := range sentence {
			if idx, ok := v.IndexOf(tok); ok {
				row = append(row, idx)
			}
		}
		encoded[i] = row
	}
	return encoded
}

func tokenList(v *vocab.Vocabulary) []string {
	out := make([]string, v.Len())
	for i := range out {
		out[i] = v.Entry(i).Token
	}
	return out
}
