// Package vocab builds the frequency-sorted, minimum-frequency-filtered
// vocabulary consumed by the Huffman coder and the trainer.
package vocab

import (
	"sort"

	"word2vec/corpus"
	"word2vec/werrors"
)

// Entry is one surviving token and its exact corpus count.
type Entry struct {
	Token string
	Count int
}

// Vocabulary is the ordered, deterministic result of Build/FromCounts:
// primary key count descending, secondary key token ascending. It is
// immutable once built.
type Vocabulary struct {
	entries []Entry
	index   map[string]int
}

// Len returns the number of distinct tokens in the vocabulary.
func (v *Vocabulary) Len() int { return len(v.entries) }

// Entry returns the i'th entry in vocabulary order.
func (v *Vocabulary) Entry(i int) Entry { return v.entries[i] }

// Entries returns the full ordered entry list. The caller must not
// mutate the returned slice.
func (v *Vocabulary) Entries() []Entry { return v.entries }

// Contains reports whether token survived the minFrequency filter.
func (v *Vocabulary) Contains(token string) bool {
	_, ok := v.index[token]
	return ok
}

// IndexOf returns the vocabulary-order position of token, if present.
func (v *Vocabulary) IndexOf(token string) (int, bool) {
	i, ok := v.index[token]
	return i, ok
}

// TotalCount sums the counts of every surviving entry.
func (v *Vocabulary) TotalCount() int {
	total := 0
	for _, e := range v.entries {
		total += e.Count
	}
	return total
}

// Build counts every token across one pass of sentences, drops any token
// with a count below minFrequency, and sorts the rest by (count desc,
// token asc). An empty result is returned as a non-nil *Vocabulary with
// Len() == 0; callers that require a non-empty vocabulary should check
// that themselves and return werrors.ErrEmptyVocabulary.
func Build(sentences corpus.Source, minFrequency int) (*Vocabulary, error) {
	if minFrequency < 0 {
		return nil, werrors.InvalidConfigf("minFrequency must be non-negative, got %d", minFrequency)
	}

	counts := make(map[string]int)
	err := sentences.Each(func(sentence []string) bool {
		for _, tok := range sentence {
			counts[tok]++
		}
		return true
	})
	if err != nil {
		return nil, werrors.IOErrorWrap(err)
	}

	return fromCounts(counts, minFrequency)
}

// FromCounts bypasses counting: it builds a Vocabulary directly from a
// caller-supplied token->count map, still applying the minFrequency
// filter and the deterministic sort.
func FromCounts(counts map[string]int, minFrequency int) (*Vocabulary, error) {
	if minFrequency < 0 {
		return nil, werrors.InvalidConfigf("minFrequency must be non-negative, got %d", minFrequency)
	}
	return fromCounts(counts, minFrequency)
}

func fromCounts(counts map[string]int, minFrequency int) (*Vocabulary, error) {
	entries := make([]Entry, 0, len(counts))
	for tok, c := range counts {
		if c < minFrequency {
			continue
		}
		entries = append(entries, Entry{Token: tok, Count: c})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})

	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Token] = i
	}

	return &Vocabulary{entries: entries, index: index}, nil
}
