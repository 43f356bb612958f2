package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// isHTMLSpace reports whether b is ASCII whitespace as defined by HTML.
func isHTMLSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\f' || b == '\r'
}

// isBlank is true for strings consisting of HTML whitespace only.
func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHTMLSpace(s[i]) {
			return false
		}
	}
	return true
}

// collapse replaces every run of HTML whitespace by a single space.
// Leading and trailing whitespace is collapsed, not removed.
func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for i := 0; i < len(s); i++ {
		if isHTMLSpace(s[i]) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteByte(s[i])
	}
	return b.String()
}

// verbatimText concatenates the text of all descendants of n.
func verbatimText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = following(c, n) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// flattenedText is the text of all descendants of n, with whitespace collapsed
// and trimmed.
func flattenedText(n *html.Node) string {
	return strings.Trim(collapse(verbatimText(n)), " ")
}

// following returns the next node after c in a pre-order walk of the subtree
// below root, or nil. It uses parent links instead of recursion.
func following(c, root *html.Node) *html.Node {
	if c.FirstChild != nil {
		return c.FirstChild
	}
	for c != nil && c != root {
		if c.NextSibling != nil {
			return c.NextSibling
		}
		c = c.Parent
	}
	return nil
}

// attr returns the value of an attribute of n, or "" if absent.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// outerHTML renders an element with all of its children.
func outerHTML(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		tracer().Debugf("cannot render <%s>: %v", n.Data, err)
		return flattenedText(n)
	}
	return buf.String()
}
