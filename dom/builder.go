package dom

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/npillmayer/nativehtml/content"
	"github.com/npillmayer/nativehtml/style"
	"golang.org/x/net/html"
)

// Builder creates content trees from HTML parse trees.
//
// A Builder may be used for concurrent builds. Its tag style table may be
// changed at any time; changes affect builds started afterwards.
type Builder struct {
	tags     *style.TagStyles
	maxDepth int
	handlers map[string]TagHandler
	ignored  map[string]bool
}

// NewBuilder creates a builder, configured by options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		maxDepth: DefaultMaxDepth,
		handlers: make(map[string]TagHandler),
		ignored:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.tags == nil {
		b.tags = style.NewTagStyles()
	}
	return b
}

// TagStyles returns the table of tag default styles used by b.
func (b *Builder) TagStyles() *style.TagStyles {
	return b.tags
}

// SetTagStyle replaces the default style of a tag for all subsequent builds.
func (b *Builder) SetTagStyle(tag string, s style.Style) {
	b.tags.Set(tag, s)
}

// Build converts an HTML node to content nodes. inherited is the style of
// the surrounding content.
//
// Element nodes are converted according to their classification. Text nodes
// result in a text run, unless they are blank. For document nodes, the
// children of <body> are converted.
func (b *Builder) Build(n *html.Node, inherited style.Style) []content.Node {
	r := b.start()
	return r.build(n, inherited, 0)
}

// BuildChildren converts the children of an HTML node to content nodes,
// mixing text runs and elements in document order.
func (b *Builder) BuildChildren(parent *html.Node, inherited style.Style) []content.Node {
	if parent == nil {
		return nil
	}
	r := b.start()
	return r.children(parent, inherited, 0)
}

// run holds the state of a single build.
type run struct {
	*Builder
	styles style.Snapshot
}

func (b *Builder) start() run {
	return run{Builder: b, styles: b.tags.Snapshot()}
}

func (r run) build(n *html.Node, inherited style.Style, depth int) []content.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case html.ElementNode:
		return r.element(n, inherited, depth)
	case html.TextNode:
		return r.text(n, inherited)
	case html.DocumentNode:
		if body := goquery.NewDocumentFromNode(n).Find("body"); body.Length() > 0 {
			return r.children(body.Get(0), inherited, depth)
		}
		return r.children(n, inherited, depth)
	}
	return nil
}

// children converts the children of parent, which are at nesting depth depth.
func (r run) children(parent *html.Node, effective style.Style, depth int) []content.Node {
	var nodes []content.Node
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			nodes = append(nodes, r.text(c, effective)...)
		case html.ElementNode:
			nodes = append(nodes, r.element(c, effective, depth)...)
		}
	}
	return nodes
}

func (r run) text(n *html.Node, effective style.Style) []content.Node {
	if isBlank(n.Data) {
		return nil
	}
	return []content.Node{content.Text{Text: collapse(n.Data), Style: effective}}
}

// element converts an element at nesting depth depth.
func (r run) element(n *html.Node, inherited style.Style, depth int) []content.Node {
	tag := normalize(n.Data)
	if r.ignored[tag] {
		return nil
	}
	tagLevel := style.Merge(r.styles.Lookup(tag), style.ParseDeclarations(attr(n, "style")))
	effective := style.Merge(inherited, tagLevel)
	if h, ok := r.handlers[tag]; ok {
		return h.HandleElement(n, effective)
	}
	if depth >= r.maxDepth {
		tracer().Infof("dom: <%s> nested too deep, reducing to text", tag)
		text := flattenedText(n)
		if text == "" {
			return nil
		}
		return []content.Node{content.Text{Text: text, Style: effective}}
	}
	cls := Classify(tag)
	switch cls.Kind {
	case HeadingElement, TextElement:
		return one(content.Text{Text: flattenedText(n), Style: effective})
	case EmphasisElement, SpanElement:
		return r.inline(n, effective, depth, func(children []content.Node) content.Node {
			return content.Span{Children: children, Style: effective}
		})
	case AnchorElement:
		return one(content.Link{Text: flattenedText(n), Href: attr(n, "href"), Style: effective})
	case QuoteElement:
		return one(content.Quote{Text: flattenedText(n)})
	case CodeElement:
		return one(content.Code{Text: verbatimText(n)})
	case DivisionElement:
		return one(content.Container{Children: r.children(n, effective, depth+1)})
	case ParagraphElement:
		return r.inline(n, effective, depth, func(children []content.Node) content.Node {
			return content.Paragraph{Children: children, Style: effective}
		})
	case BreakElement:
		return one(content.LineBreak{})
	case ListElement:
		return one(content.List{Items: r.listItems(n, effective, depth), Ordered: cls.Ordered})
	case ListItemElement:
		return one(content.ListItem{Children: r.children(n, effective, depth+1)})
	case TableElement:
		return one(content.Table{Rows: r.rows(n, effective, depth)})
	case RowGroupElement:
		rows := r.rows(n, effective, depth)
		nodes := make([]content.Node, len(rows))
		for i, row := range rows {
			nodes[i] = row
		}
		return nodes
	case RowElement:
		return one(content.TableRow{Cells: r.cells(n, effective, depth)})
	case CellElement:
		return one(content.TableCell{Children: r.children(n, effective, depth+1)})
	case ImageElement:
		return one(content.Image{Src: attr(n, "src"), Alt: attr(n, "alt")})
	}
	tracer().Infof("dom: unsupported element <%s>", n.Data)
	return one(content.Unsupported{Markup: outerHTML(n)})
}

func one(n content.Node) []content.Node {
	return []content.Node{n}
}

// inline converts the children of an inline container. Block-level children
// break the container into parts: every run of inline children is wrapped
// separately, the block-level children are placed between them.
// An element without any children results in one empty container.
func (r run) inline(n *html.Node, effective style.Style, depth int,
	wrap func([]content.Node) content.Node) []content.Node {
	//
	var nodes, inlines []content.Node
	split := false
	for _, ch := range r.children(n, effective, depth+1) {
		if !content.IsBlockLevel(ch) {
			inlines = append(inlines, ch)
			continue
		}
		split = true
		if len(inlines) > 0 {
			nodes = append(nodes, wrap(inlines))
			inlines = nil
		}
		nodes = append(nodes, ch)
	}
	if len(inlines) > 0 || !split {
		nodes = append(nodes, wrap(inlines))
	}
	if split {
		tracer().Debugf("dom: inline <%s> split around block-level content", n.Data)
	}
	return nodes
}

// listItems converts the <li> children of a list. Other children are dropped.
func (r run) listItems(n *html.Node, effective style.Style, depth int) []content.Node {
	var items []content.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !r.accept(c, ListItemElement) {
			continue
		}
		for _, built := range r.element(c, effective, depth+1) {
			if item, ok := built.(content.ListItem); ok {
				items = append(items, item)
			} else {
				tracer().Debugf("dom: dropping %s from list", built.Kind())
			}
		}
	}
	return items
}

// rows converts the rows of a table or of a row group. Row groups are
// transparent. Other children are dropped.
func (r run) rows(n *html.Node, effective style.Style, depth int) []content.TableRow {
	var rows []content.TableRow
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !r.accept(c, RowElement, RowGroupElement) {
			continue
		}
		for _, built := range r.element(c, effective, depth+1) {
			if row, ok := built.(content.TableRow); ok {
				rows = append(rows, row)
			} else {
				tracer().Debugf("dom: dropping %s from table", built.Kind())
			}
		}
	}
	return rows
}

// cells converts the cells of a table row. Other children are dropped.
func (r run) cells(n *html.Node, effective style.Style, depth int) []content.TableCell {
	var cells []content.TableCell
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !r.accept(c, CellElement) {
			continue
		}
		for _, built := range r.element(c, effective, depth+1) {
			if cell, ok := built.(content.TableCell); ok {
				cells = append(cells, cell)
			} else {
				tracer().Debugf("dom: dropping %s from table row", built.Kind())
			}
		}
	}
	return cells
}

// accept checks if c is an element of one of the given kinds. Everything else
// is traced as dropped, except blank text and comments.
func (r run) accept(c *html.Node, kinds ...ElementKind) bool {
	switch c.Type {
	case html.ElementNode:
		k := Classify(c.Data).Kind
		for _, kind := range kinds {
			if k == kind {
				return true
			}
		}
		tracer().Debugf("dom: dropping misplaced <%s>", c.Data)
	case html.TextNode:
		if !isBlank(c.Data) {
			tracer().Debugf("dom: dropping misplaced text %q", c.Data)
		}
	}
	return false
}
