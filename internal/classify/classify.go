// Package classify decides, per token, whether it is of English origin.
//
// Classification is a pure function of the token's normalized form and the
// injected lexicon: direct lookup first, then hybrid-word decomposition
// (English stem + apostrophe + Turkish suffix chain), then optional
// Porter2 stemming for inflected forms. Everything that does not match
// degrades to Native; classification itself never fails.
package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball"
	gocache "github.com/patrickmn/go-cache"

	"github.com/cagridemirci1MIS/codemix/internal/lexicon"
	"github.com/cagridemirci1MIS/codemix/internal/model"
)

// Classifier classifies tokens against a read-only English lexicon.
// Safe for concurrent use: the lexicon is immutable and the memoization
// cache is internally synchronized.
type Classifier struct {
	lex  *lexicon.Lexicon
	cfg  model.ClassifierConfig
	memo *gocache.Cache
}

// New creates a classifier. Returns lexicon.ErrEmptyLexicon when the
// word set is missing or empty.
func New(lex *lexicon.Lexicon, cfg model.ClassifierConfig) (*Classifier, error) {
	if lex == nil || lex.Len() == 0 {
		return nil, lexicon.ErrEmptyLexicon
	}
	if cfg.MinTokenLength < 1 {
		cfg.MinTokenLength = 1
	}

	return &Classifier{
		lex: lex,
		cfg: cfg,
		// Entries never expire; the lexicon is fixed for the
		// classifier's lifetime.
		memo: gocache.New(gocache.NoExpiration, 0),
	}, nil
}

// Lexicon returns the injected lexicon.
func (c *Classifier) Lexicon() *lexicon.Lexicon {
	return c.lex
}

// Options returns the configuration the classifier was built with.
func (c *Classifier) Options() model.ClassifierConfig {
	return c.cfg
}

// Classify returns the classification for one token.
func (c *Classifier) Classify(token string) model.Classification {
	return c.ClassifyToken(token).Class
}

// ClassifyToken returns the full per-token result, including the matched
// English root when one was found.
func (c *Classifier) ClassifyToken(token string) model.TokenClass {
	norm := c.Normalize(token)
	if norm == "" {
		return model.TokenClass{Token: token, Class: model.Native}
	}

	if cached, ok := c.memo.Get(norm); ok {
		tc := cached.(model.TokenClass)
		tc.Token = token
		return tc
	}

	tc := c.classifyNorm(norm)
	c.memo.Set(norm, tc, gocache.NoExpiration)
	tc.Token = token
	return tc
}

// classifyNorm classifies a non-empty normalized form.
func (c *Classifier) classifyNorm(norm string) model.TokenClass {
	// Short-token policy: below the configured length the token is
	// excluded from English counting outright, before any lookup.
	if utf8.RuneCountInString(norm) < c.cfg.MinTokenLength {
		return model.TokenClass{Class: model.Excluded}
	}

	// Direct lexicon match.
	if c.lex.Contains(norm) {
		return model.TokenClass{Class: model.English, Root: norm}
	}

	// Hybrid decomposition: English stem + apostrophe + Turkish suffixes.
	if p := Decompose(norm); p.Kind == Hybrid {
		if root, ok := c.lookupStem(p.Root); ok {
			return model.TokenClass{Class: model.English, Root: root, Hybrid: true}
		}
		return model.TokenClass{Class: model.Native}
	}

	// Stemming pass for inflected plain forms ("liking" → "like").
	if stem, ok := c.stem(norm); ok && stem != norm && c.lex.Contains(stem) {
		return model.TokenClass{Class: model.English, Root: stem}
	}

	return model.TokenClass{Class: model.Native}
}

// stem applies Porter2 stemming when configured. snowball lower-cases its
// input internally, so in case-sensitive mode only tokens that are already
// lower case are stemmed; stemming anything else would smuggle a folded
// match past the CaseSensitive option.
func (c *Classifier) stem(word string) (string, bool) {
	if !c.cfg.Stemming {
		return "", false
	}
	if c.cfg.CaseSensitive && word != strings.ToLower(word) {
		return "", false
	}
	s, err := snowball.Stem(word, "english", false)
	if err != nil {
		return "", false
	}
	return s, true
}

// lookupStem tests a hybrid-word stem against the lexicon, directly and
// then stemmed. Single-letter stems are never accepted: 'a'lamak tells us
// nothing about English origin.
func (c *Classifier) lookupStem(stem string) (string, bool) {
	if utf8.RuneCountInString(stem) < 2 {
		return "", false
	}
	if c.lex.Contains(stem) {
		return stem, true
	}
	if s, ok := c.stem(stem); ok && c.lex.Contains(s) {
		return s, true
	}
	return "", false
}

// Normalize lower-cases (unless case-sensitive) and strips surrounding
// punctuation. Internal apostrophes survive so hybrid forms stay intact.
// A token with no letters at all normalizes to the empty string.
func (c *Classifier) Normalize(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}

	if !c.cfg.CaseSensitive {
		token = foldLower(token)
	}

	token = strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	if !strings.ContainsFunc(token, unicode.IsLetter) {
		return ""
	}
	return token
}

// foldLower lower-cases with one Turkish accommodation: dotted capital İ
// maps to plain i. Plain I keeps its standard mapping; folding it to ı
// would break capitalized English words.
func foldLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 'İ' {
			return 'i'
		}
		return unicode.ToLower(r)
	}, s)
}
