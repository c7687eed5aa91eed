// Package tokenize splits mixed Turkish–English social-media text into
// word-level tokens.
//
// Two API layers are provided:
//
//   - Structured: Tokens returns []Token with byte offsets and type
//     metadata. The invariant s[t.Start:t.End] == t.Text holds for every
//     token, and concatenating all token texts reconstructs the input.
//   - Convenience: Words returns only Word-type token texts, which is what
//     ratio computation and root extraction consume.
//
// Apostrophes (straight and curly) between letters are kept inside Word
// tokens, so hybrid forms like "like'lamak" survive as single tokens and
// can be decomposed downstream.
//
// All functions are safe for concurrent use by multiple goroutines.
package tokenize

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Letters in any script, including internal apostrophes
	Number                       // Contiguous digits
	Punctuation                  // Punctuation marks
	Space                        // Contiguous whitespace
	Symbol                       // Everything else: emoji, math symbols, etc.
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is one unit of text with its position and classification.
type Token struct {
	Text  string
	Start int // byte offset, inclusive
	End   int // byte offset, exclusive
	Type  TokenType
}

// String returns a debug representation, e.g. Word("salam")[0:5].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// apostrophes accepted inside a word. Social-media text mixes the ASCII
// apostrophe with the curly quotes most mobile keyboards insert.
func isApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == '‘' || r == 'ʼ'
}

// Tokens splits s into all tokens with metadata.
func Tokens(s string) []Token {
	if s == "" {
		return nil
	}

	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		switch {
		case unicode.IsSpace(r):
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(nr) {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})

		case unicode.IsDigit(r):
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsDigit(nr) {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Number})

		case unicode.IsLetter(r):
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End

		case unicode.IsPunct(r):
			tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Punctuation})
			i += size

		default:
			tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
			i += size
		}
	}

	return tokens
}

// scanWord consumes letters starting at pos, joining a single apostrophe
// when a letter follows it. A trailing apostrophe is left for the
// punctuation path.
func scanWord(s string, pos int) Token {
	i := pos
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if unicode.IsLetter(r) {
			i += size
			continue
		}

		if isApostrophe(r) {
			nr, _ := utf8.DecodeRuneInString(s[i+size:])
			if unicode.IsLetter(nr) {
				i += size
				continue
			}
		}

		break
	}
	return Token{Text: s[pos:i], Start: pos, End: i, Type: Word}
}

// Words returns only Word-type token texts from the text.
// Numbers, punctuation, and symbols are not included; the ratio
// denominator is the count of word tokens, matching how the thesis
// scripts tokenized their corpora.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := Tokens(s)
	words := make([]string, 0, len(tokens)/2)
	for _, t := range tokens {
		if t.Type == Word {
			words = append(words, t.Text)
		}
	}
	return words
}
