package trainer

import (
	"word2vec/huffman"
	"word2vec/unigram"
	"word2vec/vocab"
)

// network holds the shared, mostly-read-only state every worker sees,
// plus the three weight matrices workers mutate unsynchronized
// (Hogwild!-style: lost updates are accepted, the only synchronized
// datum is actualWordCount). It is built once by newNetwork and never
// replaced during training.
type network struct {
	cfg Config

	v     *vocab.Vocabulary
	nodes []*huffman.Node // aligned to vocabulary index
	table *unigram.Table  // nil when NegativeSamples == 0

	syn0    []float64 // |V| x L, input/output embedding
	syn1    []float64 // |V| x L, hierarchical-softmax weights (stay zero if !UseHierarchicalSoftmax)
	syn1neg []float64 // |V| x L, negative-sampling weights (stay zero if NegativeSamples == 0)

	numTrainedTokens int64
}

// newNetwork allocates and initializes the shared weight matrices. syn0
// is seeded from the PRNG sequence; syn1 and syn1neg are zero-valued by
// Go's slice allocation already, matching the spec's zero-init.
// numSentences accounts for the per-sentence absent end-of-sentence
// marker in numTrainedTokens.
func newNetwork(cfg Config, v *vocab.Vocabulary, nodes map[string]*huffman.Node, table *unigram.Table, numSentences int) *network {
	n := v.Len()
	l := cfg.LayerSize

	nodesByIndex := make([]*huffman.Node, n)
	for i := 0; i < n; i++ {
		nodesByIndex[i] = nodes[v.Entry(i).Token]
	}

	net := &network{
		cfg:     cfg,
		v:       v,
		nodes:   nodesByIndex,
		table:   table,
		syn0:    make([]float64, n*l),
		syn1:    make([]float64, n*l),
		syn1neg: make([]float64, n*l),
	}

	r := seed
	for tok := 0; tok < n; tok++ {
		// One extra PRNG draw per token reserves the randomness slot of
		// the reference implementation's sentinel end-of-sentence token.
		r = nextRandom(r)
		row := net.syn0Row(tok)
		for k := 0; k < l; k++ {
			r = nextRandom(r)
			row[k] = (float64(uint64(r)&0xFFFF)/65536 - 0.5) / float64(l)
		}
	}

	net.numTrainedTokens = int64(v.TotalCount()) + int64(numSentences)

	return net
}

func (n *network) syn0Row(i int) []float64 {
	l := n.cfg.LayerSize
	return n.syn0[i*l : (i+1)*l]
}

func (n *network) syn1Row(i int) []float64 {
	l := n.cfg.LayerSize
	return n.syn1[i*l : (i+1)*l]
}

func (n *network) syn1negRow(i int) []float64 {
	l := n.cfg.LayerSize
	return n.syn1neg[i*l : (i+1)*l]
}
