package eijiro

import (
	"errors"
	"strings"
	"testing"
)

func buildTestDictionary(t *testing.T, corpus string) *Dictionary {
	t.Helper()
	entries, _, err := ParseCorpus(strings.NewReader(corpus), false)
	if err != nil {
		t.Fatalf("fail to parse the corpus: %s", err)
	}
	d, err := BuildDictionary(entries)
	if err != nil {
		t.Fatalf("fail to build the dictionary: %s", err)
	}
	return d
}

func TestBuildDictionary(t *testing.T) {
	d := buildTestDictionary(t, testCorpus)

	if d.Size() != 2 {
		t.Fatalf("want 2 keys, got %d", d.Size())
	}
	if d.Key(0) != "cat" || d.Key(1) != "catalog" {
		t.Errorf("unexpected keys: %s, %s", d.Key(0), d.Key(1))
	}

	fields := d.Fields(0)
	if len(fields) != 2 {
		t.Fatalf("want 2 fields for cat, got %d", len(fields))
	}
	if fields[0].Ident != "n" || fields[1].Ident != "v" {
		t.Errorf("field order not preserved: %s, %s", fields[0].Ident, fields[1].Ident)
	}
	if len(d.Fields(1)) != 1 {
		t.Errorf("want 1 field for catalog, got %d", len(d.Fields(1)))
	}
}

func TestBuildDictionarySorted(t *testing.T) {
	corpus := `■zebra : striped equid
■ant : small insect
■Zebra : capitalized variant
■ant : second sense
■émeute : a riot
`
	d := buildTestDictionary(t, corpus)

	for i := 1; i < d.Size(); i++ {
		if d.Key(i-1) >= d.Key(i) {
			t.Errorf("keys not strictly ascending: %q >= %q", d.Key(i-1), d.Key(i))
		}
	}
	for i := 0; i < d.Size(); i++ {
		if len(d.Fields(i)) == 0 {
			t.Errorf("empty field group for %q", d.Key(i))
		}
	}

	pos := -1
	for i := 0; i < d.Size(); i++ {
		if d.Key(i) == "ant" {
			pos = i
		}
	}
	if pos < 0 {
		t.Fatal("ant not found")
	}
	fields := d.Fields(pos)
	if len(fields) != 2 {
		t.Fatalf("want 2 fields for ant, got %d", len(fields))
	}
	if fields[0].Explanation.Body != "small insect" || fields[1].Explanation.Body != "second sense" {
		t.Errorf("encounter order not preserved: %v", fields)
	}
}

func TestBuildDictionaryEmpty(t *testing.T) {
	_, err := BuildDictionary(nil)
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("want ErrEmptyCorpus, got %v", err)
	}
}
