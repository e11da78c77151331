package eijiro

import (
	"errors"
	"strings"
	"testing"
)

var indexCorpus = `■cart : wheeled vehicle
■cat : feline animal
■catalog : a list of items
■cats : plural of cat
■coat : outer garment
■dog : canine animal
■dot : small round mark
`

func buildTestIndex(t *testing.T) (*Dictionary, *Index) {
	t.Helper()
	d := buildTestDictionary(t, indexCorpus)
	ix, err := BuildIndex(d)
	if err != nil {
		t.Fatalf("fail to build the index: %s", err)
	}
	return d, ix
}

// editDistance is the plain DP oracle over Unicode code points.
func editDistance(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	prev := make([]int, len(br)+1)
	cur := make([]int, len(br)+1)
	for j := 0; j <= len(br); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		cur[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			m := prev[j-1] + cost
			if d := prev[j] + 1; d < m {
				m = d
			}
			if d := cur[j-1] + 1; d < m {
				m = d
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(br)]
}

func collectFuzzy(t *testing.T, ix *Index, word string, maxDist uint32) []string {
	t.Helper()
	it, err := ix.Fuzzy(word, maxDist)
	if err != nil {
		t.Fatalf("Fuzzy(%q, %d): %s", word, maxDist, err)
	}
	var got []string
	for it.Next() {
		got = append(got, it.Key())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("iterator error: %s", err)
	}
	return got
}

func TestIndexExact(t *testing.T) {
	d, ix := buildTestIndex(t)
	for i := 0; i < d.Size(); i++ {
		pos, ok := ix.Exact(d.Key(i))
		if !ok {
			t.Errorf("%q not found", d.Key(i))
			continue
		}
		if pos != i {
			t.Errorf("%q: want position %d, got %d", d.Key(i), i, pos)
		}
	}
	if _, ok := ix.Exact("missing"); ok {
		t.Error("unexpected match for missing key")
	}
}

func TestIndexFuzzyZero(t *testing.T) {
	d, ix := buildTestIndex(t)
	for i := 0; i < d.Size(); i++ {
		got := collectFuzzy(t, ix, d.Key(i), 0)
		if len(got) != 1 || got[0] != d.Key(i) {
			t.Errorf("Fuzzy(%q, 0): want exactly the key itself, got %v", d.Key(i), got)
		}
	}
	if got := collectFuzzy(t, ix, "cta", 0); len(got) != 0 {
		t.Errorf("Fuzzy(cta, 0): want no match, got %v", got)
	}
}

func TestIndexFuzzyDistance(t *testing.T) {
	d, ix := buildTestIndex(t)
	queries := []string{"cat", "cats", "cta", "dof", "coats", "xylophone"}
	for _, q := range queries {
		for maxDist := uint32(1); maxDist <= 2; maxDist++ {
			got := collectFuzzy(t, ix, q, maxDist)

			want := map[string]bool{}
			for i := 0; i < d.Size(); i++ {
				if editDistance(q, d.Key(i)) <= int(maxDist) {
					want[d.Key(i)] = true
				}
			}
			if len(got) != len(want) {
				t.Errorf("Fuzzy(%q, %d): want %d matches, got %v", q, maxDist, len(want), got)
				continue
			}
			for _, k := range got {
				if !want[k] {
					t.Errorf("Fuzzy(%q, %d): false positive %q", q, maxDist, k)
				}
			}
			for i := 1; i < len(got); i++ {
				if got[i-1] >= got[i] {
					t.Errorf("Fuzzy(%q, %d): enumeration not in sorted order: %v", q, maxDist, got)
				}
			}
		}
	}
}

func TestIndexFuzzyPositions(t *testing.T) {
	d, ix := buildTestIndex(t)
	it, err := ix.Fuzzy("cat", 1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for it.Next() {
		if d.Key(it.Position()) != it.Key() {
			t.Errorf("position %d does not resolve to %q", it.Position(), it.Key())
		}
	}
	if err := it.Err(); err != nil {
		t.Fatalf("iterator error: %s", err)
	}
}

func TestIndexFuzzyRestartable(t *testing.T) {
	_, ix := buildTestIndex(t)

	first := collectFuzzy(t, ix, "cat", 2)

	// Abandon a traversal half way through, then start over.
	it, err := ix.Fuzzy("cat", 2)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !it.Next() {
		t.Fatal("want at least one match")
	}

	second := collectFuzzy(t, ix, "cat", 2)
	if strings.Join(first, ",") != strings.Join(second, ",") {
		t.Errorf("traversals differ: %v vs %v", first, second)
	}
}

func TestIndexFuzzyDistanceTooLarge(t *testing.T) {
	_, ix := buildTestIndex(t)
	_, err := ix.Fuzzy("cat", MaxLookupDistance+1)
	if !errors.Is(err, ErrDistanceTooLarge) {
		t.Errorf("want ErrDistanceTooLarge, got %v", err)
	}
}
