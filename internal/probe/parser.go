package probe

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

const (
	// maxTitleLen bounds the stored page title.
	maxTitleLen = 200

	// maxBodyTextLen bounds the extracted body text kept for analysis.
	// Parked/for-sale markers appear early on placeholder pages, and the
	// classifier's thin-page gate only needs to know whether the page
	// clears the threshold.
	maxBodyTextLen = 5000
)

// PageText is the visible content extracted from an HTML document.
type PageText struct {
	// Title is the <title> text, whitespace-trimmed and truncated.
	Title string

	// Body is the visible text of the page (markup, scripts, and styles
	// discarded), lowercased, whitespace-collapsed, and truncated. The
	// title text leads it: parking pages often carry their only marker
	// in the <title>.
	Body string
}

// ExtractText parses HTML and returns the page title plus the visible
// body text. Malformed HTML is tolerated: the tokenizer-based parser
// recovers the way browsers do.
func ExtractText(r io.Reader) (PageText, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return PageText{}, err
	}

	var title strings.Builder
	var body strings.Builder

	var walk func(n *html.Node, inTitle bool)
	walk = func(n *html.Node, inTitle bool) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "template", "iframe":
				// Invisible content never counts toward page text.
				return
			case "title":
				inTitle = true
			}
		case html.TextNode:
			if inTitle {
				title.WriteString(n.Data)
			} else {
				body.WriteString(n.Data)
				body.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inTitle)
		}
	}
	walk(doc, false)

	combined := title.String() + " " + body.String()
	text := PageText{
		Title: truncate(strings.TrimSpace(collapseSpaces(title.String())), maxTitleLen),
		Body:  truncate(strings.ToLower(strings.TrimSpace(collapseSpaces(combined))), maxBodyTextLen),
	}
	return text, nil
}

// collapseSpaces normalizes all whitespace runs to single spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate bounds s to max bytes. The text is analyzed, not displayed,
// so a split rune at the boundary is harmless.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
