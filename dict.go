package eijiro

import (
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Dictionary is the built lookup artifact: distinct headwords in
// ascending byte order and, for each headword, the Fields attached to
// it in corpus encounter order. It is immutable after construction and
// safe to share between any number of concurrent lookups.
type Dictionary struct {
	keys   []string
	groups [][]*Field
}

// Size returns the number of distinct headwords.
func (d *Dictionary) Size() int {
	return len(d.keys)
}

// Key returns the headword at position i of the sorted key sequence.
func (d *Dictionary) Key(i int) string {
	return d.keys[i]
}

// Fields returns the senses of the headword at position i. The
// returned slice is shared and must not be modified.
func (d *Dictionary) Fields(i int) []*Field {
	return d.groups[i]
}

// DictionaryBuilder groups entries by exact headword equality,
// preserving the relative order of Fields within a group.
type DictionaryBuilder struct {
	tree *redblacktree.Tree
}

func NewDictionaryBuilder() *DictionaryBuilder {
	return &DictionaryBuilder{
		// Go string comparison is byte-wise lexicographic, which is
		// the order the lookup index requires.
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			l, _ := a.(string)
			r, _ := b.(string)
			return strings.Compare(l, r)
		}),
	}
}

func (b *DictionaryBuilder) Add(headword string, field *Field) {
	v, ok := b.tree.Get(headword)
	if !ok {
		b.tree.Put(headword, []*Field{field})
		return
	}
	fields, _ := v.([]*Field)
	b.tree.Put(headword, append(fields, field))
}

// Build walks the tree in order and emits the sorted unique key
// sequence with its parallel field table.
func (b *DictionaryBuilder) Build() (*Dictionary, error) {
	size := b.tree.Size()
	if size == 0 {
		return nil, ErrEmptyCorpus
	}
	d := &Dictionary{
		keys:   make([]string, 0, size),
		groups: make([][]*Field, 0, size),
	}
	it := b.tree.Iterator()
	for it.Next() {
		key, _ := it.Key().(string)
		fields, _ := it.Value().([]*Field)
		d.keys = append(d.keys, key)
		d.groups = append(d.groups, fields)
	}
	return d, nil
}

// BuildDictionary groups a parsed entry sequence into a Dictionary.
// No entry is dropped: every Field attaches to exactly one key.
func BuildDictionary(entries []Entry) (*Dictionary, error) {
	b := NewDictionaryBuilder()
	for _, e := range entries {
		b.Add(e.Headword, e.Field)
	}
	return b.Build()
}
