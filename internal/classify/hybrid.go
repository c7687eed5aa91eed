package classify

// ParseKind distinguishes plain tokens from hybrid words.
type ParseKind int

const (
	// Plain is a token with no internal delimiter.
	Plain ParseKind = iota
	// Hybrid is an English stem joined to a Turkish suffix chain by an
	// apostrophe, e.g. like'lamak → (like, lamak).
	Hybrid
)

// Parse is the decomposition result for one normalized token.
type Parse struct {
	Kind   ParseKind
	Root   string // candidate English stem (Hybrid) or the whole token (Plain)
	Suffix string // suffix chain after the delimiter, empty for Plain
}

// apostrophe delimiters accepted in hybrid forms. Mobile keyboards insert
// curly quotes; scraped text carries the ASCII one.
func isDelimiter(r rune) bool {
	return r == '\'' || r == '’' || r == '‘' || r == 'ʼ'
}

// Decompose splits a normalized token at its first apostrophe delimiter.
// Both sides must be non-empty for a Hybrid result; a token with a
// dangling delimiter stays Plain with the delimiter removed.
func Decompose(token string) Parse {
	for i, r := range token {
		if !isDelimiter(r) {
			continue
		}
		root := token[:i]
		suffix := token[i+len(string(r)):]
		if root == "" || suffix == "" {
			return Parse{Kind: Plain, Root: root + suffix}
		}
		return Parse{Kind: Hybrid, Root: root, Suffix: suffix}
	}
	return Parse{Kind: Plain, Root: token}
}
