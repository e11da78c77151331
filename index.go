package eijiro

import (
	"bytes"
	"errors"
	"sync"

	"github.com/blevesearch/vellum"
	"github.com/blevesearch/vellum/levenshtein"
)

// MaxLookupDistance is the largest edit distance Fuzzy accepts. The
// parametric Levenshtein table grows combinatorially with the
// distance, so larger values are rejected at the call boundary.
const MaxLookupDistance = 3

var ErrDistanceTooLarge = errors.New("edit distance exceeds the supported maximum")

// Index is an immutable search structure over the sorted headword
// sequence of a Dictionary. Exact and Fuzzy are safe to call
// concurrently; every Fuzzy call starts an independent traversal.
type Index struct {
	fst *vellum.FST

	mu       sync.Mutex
	builders map[uint8]*levenshtein.LevenshteinAutomatonBuilder
}

// BuildIndex builds an FST mapping every dictionary key to its
// position in the sorted key sequence. The dictionary keys are already
// in ascending byte order, which the FST builder requires.
func BuildIndex(d *Dictionary) (*Index, error) {
	var buf bytes.Buffer
	b, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.Size(); i++ {
		if err := b.Insert([]byte(d.Key(i)), uint64(i)); err != nil {
			return nil, err
		}
	}
	if err := b.Close(); err != nil {
		return nil, err
	}
	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return &Index{
		fst:      fst,
		builders: map[uint8]*levenshtein.LevenshteinAutomatonBuilder{},
	}, nil
}

// Exact reports whether word is a dictionary key and, if so, its
// position in the sorted key sequence.
func (ix *Index) Exact(word string) (int, bool) {
	v, ok, err := ix.fst.Get([]byte(word))
	if err != nil || !ok {
		return 0, false
	}
	return int(v), true
}

// builder returns the Levenshtein automaton builder for the given
// distance, constructing it once. Building the parametric table is
// expensive; BuildDfa on the cached builder is cheap.
func (ix *Index) builder(distance uint8) (*levenshtein.LevenshteinAutomatonBuilder, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	lab, ok := ix.builders[distance]
	if ok {
		return lab, nil
	}
	lab, err := levenshtein.NewLevenshteinAutomatonBuilder(distance, false)
	if err != nil {
		return nil, err
	}
	ix.builders[distance] = lab
	return lab, nil
}

// Fuzzy enumerates every key whose Unicode edit distance from word is
// at most maxDist, in the natural sorted-key order of the index. The
// returned iterator is lazy and finite; the caller may stop consuming
// it at any point. Distance 0 matches exactly the keys Exact matches.
func (ix *Index) Fuzzy(word string, maxDist uint32) (*FuzzyIterator, error) {
	if maxDist > MaxLookupDistance {
		return nil, ErrDistanceTooLarge
	}
	if maxDist == 0 {
		it := &FuzzyIterator{}
		if pos, ok := ix.Exact(word); ok {
			it.key = word
			it.pos = pos
			it.single = true
		}
		return it, nil
	}
	lab, err := ix.builder(uint8(maxDist))
	if err != nil {
		return nil, err
	}
	dfa, err := lab.BuildDfa(word, uint8(maxDist))
	if err != nil {
		return nil, err
	}
	itr, err := ix.fst.Search(dfa, nil, nil)
	if err == vellum.ErrIteratorDone {
		return &FuzzyIterator{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &FuzzyIterator{itr: itr}, nil
}

// FuzzyIterator walks the matches of one Fuzzy call. Usage follows
// the usual pattern:
//
//	for it.Next() {
//		key, pos := it.Key(), it.Position()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
type FuzzyIterator struct {
	itr    *vellum.FSTIterator
	itrErr error
	key    string
	pos    int
	err    error
	single bool
	done   bool
}

func (it *FuzzyIterator) Next() bool {
	if it.done {
		return false
	}
	if it.itr == nil {
		it.done = true
		return it.single
	}
	if it.itrErr != nil {
		it.done = true
		if it.itrErr != vellum.ErrIteratorDone {
			it.err = it.itrErr
		}
		return false
	}
	k, v := it.itr.Current()
	it.key = string(k)
	it.pos = int(v)
	it.itrErr = it.itr.Next()
	return true
}

// Key returns the key matched by the last successful Next.
func (it *FuzzyIterator) Key() string {
	return it.key
}

// Position returns the matched key's position in the sorted key
// sequence, for joining against the dictionary's field table.
func (it *FuzzyIterator) Position() int {
	return it.pos
}

func (it *FuzzyIterator) Err() error {
	return it.err
}
