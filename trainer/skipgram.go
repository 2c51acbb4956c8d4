package trainer

// trainSentenceSkipGram implements the Skip-gram update rule (spec
// §4.4.8): for each target position, every context word's input vector
// takes the hidden-vector role directly (no averaging); hierarchical
// softmax reads/writes syn0[l1] in that role. The negative-sampling step
// is passed the worker's neu1 buffer, which this trainer never writes
// for Skip-gram and so stays all-zero — preserving the reference
// implementation's behavior bit-for-bit (see negativeSampling's doc
// comment in negsample.go and spec §4.4.8's open question).
//
// b is drawn with the same window-offset formula as CBOW, not the
// differing formula the Java reference uses for Skip-gram; spec §4.4.8
// calls for the unified formula rather than reproducing that difference.
func trainSentenceSkipGram(net *network, ws *workerState, sentence []int) {
	l := net.cfg.LayerSize
	w := net.cfg.WindowSize
	n := len(sentence)

	for c := 0; c < l; c++ {
		ws.neu1[c] = 0
	}

	for pos := 0; pos < n; pos++ {
		targetIdx := sentence[pos]
		node := net.nodes[targetIdx]

		ws.rng = nextRandom(ws.rng)
		b := int(((ws.rng % int64(w)) + int64(w)) % int64(w))

		for a := b; a < 2*w+1-b; a++ {
			if a == w {
				continue
			}
			c := pos - w + a
			if c < 0 || c >= n {
				continue
			}

			for d := 0; d < l; d++ {
				ws.neu1e[d] = 0
			}

			l1 := sentence[c]
			row1 := net.syn0Row(l1)

			if net.cfg.UseHierarchicalSoftmax {
				for d := 0; d < len(node.Code); d++ {
					l2 := node.Point[d]
					row2 := net.syn1Row(l2)

					var f float64
					for e := 0; e < l; e++ {
						f += row1[e] * row2[e]
					}
					if f <= -maxExp || f >= maxExp {
						continue
					}
					f = sigmoid(f)
					g := (1 - float64(node.Code[d]) - f) * ws.alpha

					for e := 0; e < l; e++ {
						ws.neu1e[e] += g * row2[e]
					}
					for e := 0; e < l; e++ {
						row2[e] += g * row1[e]
					}
				}
			}

			net.negativeSampling(ws, targetIdx, ws.neu1)

			for d := 0; d < l; d++ {
				row1[d] += ws.neu1e[d]
			}
		}
	}
}
