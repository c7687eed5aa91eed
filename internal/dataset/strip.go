package dataset

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup removes HTML tags from a scraped record, keeping only the
// visible text. Records exported from comment scrapers frequently carry
// <br>, <a> wrappers, and entity escapes; tokenizing those as words would
// inflate the English count ("href", "br"). Script and style content is
// dropped entirely.
//
// Input that is not HTML passes through with only entity decoding and
// whitespace collapsing, so it is safe to run on every record.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Malformed markup degrades to the raw text rather than failing
		// the record.
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return buf.String()
}
