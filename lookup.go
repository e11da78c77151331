package eijiro

import (
	"strings"
)

// Match is one lookup result: a matched headword and all of its
// senses.
type Match struct {
	Headword string
	Fields   []*Field
}

// Lookup runs a bounded edit-distance search for query and returns
// the matches joined with their field groups. Results whose headword
// starts with the query come first; within each group the index's
// natural sorted order is preserved. An empty query returns an empty
// result without touching the index.
func Lookup(d *Dictionary, ix *Index, query string, maxDist uint32) ([]Match, error) {
	if query == "" {
		return nil, nil
	}
	it, err := ix.Fuzzy(query, maxDist)
	if err != nil {
		return nil, err
	}
	var prefixed, others []Match
	for it.Next() {
		m := Match{Headword: it.Key(), Fields: d.Fields(it.Position())}
		if strings.HasPrefix(m.Headword, query) {
			prefixed = append(prefixed, m)
		} else {
			others = append(others, m)
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return append(prefixed, others...), nil
}
