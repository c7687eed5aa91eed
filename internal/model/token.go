package model

import "fmt"

// Classification tags a token by lexical origin.
type Classification int

const (
	// Native is the fallback class: Turkish words, numerals, symbols, and
	// anything the lexicon cannot account for. Malformed input always
	// degrades to Native, never to an error.
	Native Classification = iota

	// English marks a token whose normalized form (or hybrid root, or stem)
	// matches the English lexicon.
	English

	// Excluded marks a token shorter than the configured minimum length.
	// Excluded tokens count toward the token total but never toward the
	// English count.
	Excluded
)

// String returns the name of the classification.
func (c Classification) String() string {
	switch c {
	case Native:
		return "Native"
	case English:
		return "English"
	case Excluded:
		return "Excluded"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// TokenClass is the full per-token classifier output: the class plus the
// English root when one was found (the token itself for direct matches,
// the prefix for hybrid words, the stem for stemmed matches).
type TokenClass struct {
	Token  string         `json:"token"`
	Class  Classification `json:"class"`
	Root   string         `json:"root,omitempty"`
	Hybrid bool           `json:"hybrid,omitempty"`
}
