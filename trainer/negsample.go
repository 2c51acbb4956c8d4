package trainer

// negativeSampling runs the shared negative-sampling update against
// hidden (neu1 for CBOW, the always-zero worker-local neu1 for
// Skip-gram), accumulating gradient into ws.neu1e and mutating
// net.syn1neg in place. It is a no-op when negative sampling is
// disabled.
func (net *network) negativeSampling(ws *workerState, targetIdx int, hidden []float64) {
	k := net.cfg.NegativeSamples
	if k <= 0 {
		return
	}
	n := net.v.Len()

	for d := 0; d <= k; d++ {
		var target int
		var label float64

		if d == 0 {
			target = targetIdx
			label = 1
		} else {
			ws.rng = nextRandom(ws.rng)
			target = int(net.table.Sample(ws.rng))
			if target == 0 {
				m := int64(n - 1)
				target = int(((ws.rng%m)+m)%m) + 1
			}
			if target == targetIdx {
				continue
			}
			label = 0
		}

		row := net.syn1negRow(target)
		var f float64
		for c := range hidden {
			f += hidden[c] * row[c]
		}
		g := (label - sigmoid(f)) * ws.alpha
		for c := range hidden {
			ws.neu1e[c] += g * row[c]
			row[c] += g * hidden[c]
		}
	}
}
