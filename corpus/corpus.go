// Package corpus defines the restartable sentence source consumed by the
// vocabulary builder and the trainer. Each training iteration re-walks
// the source from the start, so callers must supply something that can
// be iterated more than once (a materialized slice, a reopened file,
// etc.) rather than a single-use channel.
package corpus

// Source is a finite, restartable sequence of sentences, each a sequence
// of tokens. Each call to Each must yield every sentence, from the
// beginning, in the same order. yield returns false to stop early.
type Source interface {
	Each(yield func(sentence []string) bool) error
}

// Slice is the simplest Source: an in-memory, already-materialized
// corpus. It is trivially restartable since Each just re-ranges over it.
type Slice [][]string

func (s Slice) Each(yield func(sentence []string) bool) error {
	for _, sentence := range s {
		if !yield(sentence) {
			break
		}
	}
	return nil
}

// Materialize drains any Source into a Slice, so that it can be
// re-iterated cheaply by the trainer's per-iteration workers without
// re-running whatever produced the original Source (e.g. a file scan).
func Materialize(src Source) (Slice, error) {
	var out Slice
	err := src.Each(func(sentence []string) bool {
		out = append(out, sentence)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of sentences produced by one pass of src.
func Count(src Source) (int, error) {
	n := 0
	err := src.Each(func([]string) bool {
		n++
		return true
	})
	return n, err
}
