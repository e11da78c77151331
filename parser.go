package eijiro

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alpha-kai-net/eijiro-go/internal/lnreader"
)

// EIJIRO line markers. A logical line is
//
//	■HEADWORD {IDENT} : BODY◆COMPLEMENT...■・EXAMPLE...
//
// where the ident segment and the complement/example tails are all
// optional. The markers are a fixed contract of the corpus format.
const (
	entryMarker      = "■"
	exampleMarker    = "■・"
	complementMarker = "◆"
	glossSeparator   = " : "
)

// ErrEmptyCorpus is returned when parsing produced no valid entry at
// all, or when the builder is handed an empty entry sequence.
var ErrEmptyCorpus = errors.New("no valid entry in the corpus")

// ParseError describes one malformed corpus line. Malformed lines are
// collected, not fatal.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid format at line %d: %s", e.Line, e.Reason)
}

// ParseCorpus reads the corpus line by line and returns one Entry per
// well-formed line, in corpus order. Blank lines are skipped.
// Malformed lines are returned as collected ParseErrors; parsing fails
// only if no line was valid. With strict set, the first malformed line
// aborts the parse instead.
func ParseCorpus(input io.Reader, strict bool) ([]Entry, []*ParseError, error) {
	r := lnreader.NewLineNumberReader(input)
	var entries []Entry
	var perrs []*ParseError
	for {
		line, err := r.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, perrs, err
		}
		if lnreader.IsEmptyLine(line) {
			continue
		}
		e, perr := parseLine(string(line), r.NumLine)
		if perr != nil {
			if strict {
				return nil, []*ParseError{perr}, perr
			}
			perrs = append(perrs, perr)
			continue
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil, perrs, ErrEmptyCorpus
	}
	return entries, perrs, nil
}

// parseLine splits one corpus line by the position of its markers: the
// headword segment runs to the first " : ", the example section starts
// at the first ■・ after it, and ◆ separates complements only before
// that point. Marker characters anywhere else are literal text.
func parseLine(line string, num int) (Entry, *ParseError) {
	if !strings.HasPrefix(line, entryMarker) {
		return Entry{}, &ParseError{num, "missing entry marker"}
	}
	rest := line[len(entryMarker):]

	sep := strings.Index(rest, glossSeparator)
	if sep < 0 {
		return Entry{}, &ParseError{num, "missing gloss separator"}
	}
	head := rest[:sep]
	content := rest[sep+len(glossSeparator):]

	var ident string
	if strings.HasSuffix(head, "}") {
		if open := strings.LastIndex(head, "{"); open >= 0 {
			ident = head[open+1 : len(head)-1]
			head = head[:open]
		}
	}
	head = strings.TrimSpace(head)
	if head == "" {
		return Entry{}, &ParseError{num, "empty headword"}
	}

	var examples []string
	if ei := strings.Index(content, exampleMarker); ei >= 0 {
		for _, ex := range strings.Split(content[ei+len(exampleMarker):], exampleMarker) {
			ex = strings.TrimSpace(ex)
			if ex != "" {
				examples = append(examples, ex)
			}
		}
		content = content[:ei]
	}

	var complements []string
	if ci := strings.Index(content, complementMarker); ci >= 0 {
		for _, c := range strings.Split(content[ci+len(complementMarker):], complementMarker) {
			c = strings.TrimSpace(c)
			if c != "" {
				complements = append(complements, c)
			}
		}
		content = content[:ci]
	}

	body := strings.TrimSpace(content)
	if body == "" {
		return Entry{}, &ParseError{num, "empty gloss body"}
	}

	return Entry{
		Headword: head,
		Field: &Field{
			Ident: ident,
			Explanation: Explanation{
				Body:        body,
				Complements: complements,
			},
			Examples: examples,
		},
	}, nil
}
