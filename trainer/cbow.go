package trainer

// trainSentenceCBOW implements the CBOW update rule (spec §4.4.7): for
// each target position, average the context window's input vectors into
// neu1, run hierarchical softmax (if enabled) and negative sampling
// against neu1, then scatter the accumulated error back to every context
// word's input row.
func trainSentenceCBOW(net *network, ws *workerState, sentence []int) {
	l := net.cfg.LayerSize
	w := net.cfg.WindowSize
	n := len(sentence)

	for pos := 0; pos < n; pos++ {
		targetIdx := sentence[pos]
		node := net.nodes[targetIdx]

		for c := 0; c < l; c++ {
			ws.neu1[c] = 0
		}
		for c := 0; c < l; c++ {
			ws.neu1e[c] = 0
		}

		ws.rng = nextRandom(ws.rng)
		b := int(((ws.rng % int64(w)) + int64(w)) % int64(w))

		cw := 0
		for a := b; a < 2*w+1-b; a++ {
			if a == w {
				continue
			}
			c := pos - w + a
			if c < 0 || c >= n {
				continue
			}
			row := net.syn0Row(sentence[c])
			for d := 0; d < l; d++ {
				ws.neu1[d] += row[d]
			}
			cw++
		}
		if cw == 0 {
			continue
		}
		for c := 0; c < l; c++ {
			ws.neu1[c] /= float64(cw)
		}

		if net.cfg.UseHierarchicalSoftmax {
			for d := 0; d < len(node.Code); d++ {
				l2 := node.Point[d]
				row := net.syn1Row(l2)

				var f float64
				for c := 0; c < l; c++ {
					f += ws.neu1[c] * row[c]
				}
				if f <= -maxExp || f >= maxExp {
					continue
				}
				f = sigmoid(f)
				g := (1 - float64(node.Code[d]) - f) * ws.alpha

				for c := 0; c < l; c++ {
					ws.neu1e[c] += g * row[c]
				}
				for c := 0; c < l; c++ {
					row[c] += g * ws.neu1[c]
				}
			}
		}

		net.negativeSampling(ws, targetIdx, ws.neu1)

		for a := b; a < 2*w+1-b; a++ {
			if a == w {
				continue
			}
			c := pos - w + a
			if c < 0 || c >= n {
				continue
			}
			row := net.syn0Row(sentence[c])
			for d := 0; d < l; d++ {
				row[d] += ws.neu1e[d]
			}
		}
	}
}
