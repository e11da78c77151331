package eijiro

// Field is one sense of a headword: an optional part-of-speech or
// sense tag, the gloss, and the example sentences attached to it in
// corpus order. A headword may own any number of Fields.
type Field struct {
	Ident       string
	Explanation Explanation
	Examples    []string
}

// Explanation carries the gloss body and its supplementary notes.
// Complements are kept separate from the body; they are rendered as
// appended annotations, never merged into it.
type Explanation struct {
	Body        string
	Complements []string
}

// Entry is one parsed corpus line: a headword paired with a single
// Field. Entries are transient; the dictionary builder consumes them
// and does not retain them.
type Entry struct {
	Headword string
	Field    *Field
}
