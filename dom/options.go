package dom

import (
	"strings"

	"github.com/npillmayer/nativehtml/content"
	"github.com/npillmayer/nativehtml/style"
	"golang.org/x/net/html"
)

// DefaultMaxDepth is the default nesting depth of elements up to which
// a Builder recurses.
const DefaultMaxDepth = 256

// Option configures a Builder.
type Option func(*Builder)

// WithTagStyles sets the table of tag default styles. Without this option a
// Builder creates a private table with the built-in defaults.
func WithTagStyles(tags *style.TagStyles) Option {
	return func(b *Builder) {
		if tags != nil {
			b.tags = tags
		}
	}
}

// WithMaxDepth limits the nesting depth of elements a Builder recurses into.
// Elements nested deeper are reduced to their text. Values < 1 select
// DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(b *Builder) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}
		b.maxDepth = depth
	}
}

// WithHandler registers a custom handler for a tag. The handler replaces the
// built-in conversion for all elements with this tag name.
func WithHandler(tag string, h TagHandler) Option {
	return func(b *Builder) {
		if h != nil {
			b.handlers[normalize(tag)] = h
		}
	}
}

// WithIgnoredTags lists tags for which no content is created at all,
// including their children.
func WithIgnoredTags(tags ...string) Option {
	return func(b *Builder) {
		for _, tag := range tags {
			b.ignored[normalize(tag)] = true
		}
	}
}

// TagHandler converts an element to content nodes. effective is the style
// computed for the element.
type TagHandler interface {
	HandleElement(n *html.Node, effective style.Style) []content.Node
}

// HandlerFunc is an adapter to use ordinary functions as tag handlers.
type HandlerFunc func(n *html.Node, effective style.Style) []content.Node

// HandleElement calls f(n, effective).
func (f HandlerFunc) HandleElement(n *html.Node, effective style.Style) []content.Node {
	return f(n, effective)
}

func normalize(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
