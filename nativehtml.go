package nativehtml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/npillmayer/nativehtml/content"
	"github.com/npillmayer/nativehtml/dom"
	"github.com/npillmayer/nativehtml/style"
	"github.com/npillmayer/nativehtml/style/cssom"
	"github.com/npillmayer/nativehtml/style/cssom/douceuradapter"
)

// ErrMarkup is returned if markup could not be parsed.
var ErrMarkup = errors.New("could not parse markup")

// Parser converts HTML markup to content trees. A parser may be used
// concurrently.
type Parser struct {
	builder        *dom.Builder
	tags           *style.TagStyles
	builderOpts    []dom.Option
	embeddedStyles bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithEmbeddedStyles switches support for <style> elements on or off.
// If on, rules with type selectors found in <style> elements are applied to
// the tag default styles for the markup containing them, and the style
// element itself is not part of the content. Default is off.
func WithEmbeddedStyles(on bool) Option {
	return func(p *Parser) {
		p.embeddedStyles = on
	}
}

// WithBuilderOptions passes options to the builder of content trees.
func WithBuilderOptions(opts ...dom.Option) Option {
	return func(p *Parser) {
		p.builderOpts = append(p.builderOpts, opts...)
	}
}

// NewParser creates a parser, configured by options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.embeddedStyles {
		p.builderOpts = append(p.builderOpts, dom.WithIgnoredTags("style"))
	}
	p.builder = dom.NewBuilder(p.builderOpts...)
	p.tags = p.builder.TagStyles()
	return p
}

// Parse reads markup and converts the content of its body to a content tree.
// Markup may be a complete HTML document or a fragment.
func (p *Parser) Parse(r io.Reader) ([]content.Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarkup, err)
	}
	body := doc.Find("body")
	if body.Length() == 0 {
		tracer().Infof("markup has no body")
		return nil, nil
	}
	b := p.builder
	if p.embeddedStyles {
		b = p.styledBuilder(doc)
	}
	return b.BuildChildren(body.Get(0), style.Style{}), nil
}

// ParseString converts markup to a content tree.
func (p *Parser) ParseString(markup string) ([]content.Node, error) {
	return p.Parse(strings.NewReader(markup))
}

// styledBuilder returns a builder using the tag styles of p, amended by the
// rules of <style> elements of doc. Without style elements, the builder of p
// is returned.
func (p *Parser) styledBuilder(doc *goquery.Document) *dom.Builder {
	sheets := douceuradapter.ExtractStyleElements(doc.Get(0))
	if len(sheets) == 0 {
		return p.builder
	}
	tags := p.tags.Clone()
	for _, sheet := range sheets {
		n := cssom.ApplyTypeRules(sheet, tags)
		tracer().Debugf("embedded stylesheet changed %d tag styles", n)
	}
	opts := append(append([]dom.Option{}, p.builderOpts...), dom.WithTagStyles(tags))
	return dom.NewBuilder(opts...)
}

// TagStyles returns the table of tag default styles of p.
func (p *Parser) TagStyles() *style.TagStyles {
	return p.tags
}

// SetTagStyle replaces the default style of a tag for all subsequent parses.
func (p *Parser) SetTagStyle(tag string, s style.Style) {
	p.tags.Set(tag, s)
}

// LoadTheme reads a YAML theme and merges it over the tag default styles
// of p. See style.ReadTheme for the format.
func (p *Parser) LoadTheme(r io.Reader) error {
	return style.LoadTheme(r, p.tags)
}
