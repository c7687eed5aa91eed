// Package lexicon provides the English reference word list the classifier
// looks tokens up in. A bundled list ships via go:embed; a corpus-specific
// list (e.g. a frequency list cut at some rank) can be loaded from a file.
//
// The lexicon is read-only after construction and safe for concurrent use.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	_ "embed"
)

//go:embed english.txt
var embedded string

// ErrEmptyLexicon is returned when a lexicon would contain no words.
var ErrEmptyLexicon = errors.New("lexicon: empty word list")

// Lexicon is an immutable set of lower-cased English words.
type Lexicon struct {
	words  []string // sorted, for binary search
	source string
}

// New builds a lexicon from a word slice. Words are lower-cased and
// deduplicated. Returns ErrEmptyLexicon if no usable words remain.
func New(words []string) (*Lexicon, error) {
	return build(words, "inline")
}

// Default returns the bundled English lexicon.
func Default() *Lexicon {
	lex, err := build(strings.Split(embedded, "\n"), "embedded")
	if err != nil {
		// An empty embedded list is a build defect.
		panic(err)
	}
	return lex
}

// Load reads a word-list file: one word per line, blank lines and
// #-comments skipped.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer func() { _ = f.Close() }()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	return build(words, path)
}

func build(raw []string, source string) (*Lexicon, error) {
	seen := make(map[string]bool, len(raw))
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil, ErrEmptyLexicon
	}
	sort.Strings(words)
	return &Lexicon{words: words, source: source}, nil
}

// Contains reports whether w is in the lexicon. Expects lower-cased input;
// the classifier normalizes before lookup.
func (l *Lexicon) Contains(w string) bool {
	if w == "" {
		return false
	}
	i := sort.SearchStrings(l.words, w)
	return i < len(l.words) && l.words[i] == w
}

// Len returns the number of words.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Source describes where the lexicon came from ("embedded", "inline", or
// a file path), for report provenance.
func (l *Lexicon) Source() string {
	return l.source
}
