/*
Package content defines the tree of styled content nodes produced from HTML
markup.

A content tree is a slice of nodes, each of which is one of a fixed set of
variants (text runs, links, paragraphs, lists, tables, …). Renderers walk a
tree either with a type switch or by implementing interface Visitor, which
has a method for every variant.

Nodes are plain values. Trees are built once and never mutated afterwards;
they may be shared freely between goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package content

import "github.com/npillmayer/nativehtml/style"

// Node is a node of a content tree. The set of node types is closed: all
// implementations are defined in this package.
type Node interface {
	Kind() Kind
	node()
}

// Kind is the type of a content node.
type Kind uint8

// Kinds of content nodes
const (
	NoKind Kind = iota
	TextKind
	LinkKind
	CodeKind
	QuoteKind
	LineBreakKind
	ListItemKind
	ListKind
	ImageKind
	TableCellKind
	TableRowKind
	TableKind
	ParagraphKind
	SpanKind
	ContainerKind
	UnsupportedKind
)

var kindNames = [...]string{
	"NoKind", "Text", "Link", "Code", "Quote", "LineBreak", "ListItem", "List",
	"Image", "TableCell", "TableRow", "Table", "Paragraph", "Span", "Container",
	"Unsupported",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Text is a run of inline text.
type Text struct {
	Text  string
	Style style.Style
}

// Link is a run of inline text with a hyperlink target. An empty Href
// denotes a link without a target.
type Link struct {
	Text  string
	Href  string
	Style style.Style
}

// Code is preformatted text, to be rendered verbatim. Code
// is not styled by the cascade.
type Code struct {
	Text string
}

// Quote is a block quotation.
type Quote struct {
	Text string
}

// LineBreak is a forced line break.
type LineBreak struct{}

// ListItem is an item of a List.
type ListItem struct {
	Children []Node
}

// List is an ordered or unordered list. Items holds list items only.
type List struct {
	Items   []Node
	Ordered bool
}

// Image is a reference to an image. An empty Src denotes an image without
// a source.
type Image struct {
	Src string
	Alt string
}

// TableCell is a cell of a table row.
type TableCell struct {
	Children []Node
}

// TableRow is a row of a table.
type TableRow struct {
	Cells []TableCell
}

// Table is a table of rows.
type Table struct {
	Rows []TableRow
}

// Paragraph is a block of inline content.
type Paragraph struct {
	Children []Node
	Style    style.Style
}

// Span is a run of styled inline content.
type Span struct {
	Children []Node
	Style    style.Style
}

// Container is a generic block grouping other content.
type Container struct {
	Children []Node
}

// Unsupported holds the markup of an element which could not be
// converted, verbatim.
type Unsupported struct {
	Markup string
}

func (Text) Kind() Kind        { return TextKind }
func (Link) Kind() Kind        { return LinkKind }
func (Code) Kind() Kind        { return CodeKind }
func (Quote) Kind() Kind       { return QuoteKind }
func (LineBreak) Kind() Kind   { return LineBreakKind }
func (ListItem) Kind() Kind    { return ListItemKind }
func (List) Kind() Kind        { return ListKind }
func (Image) Kind() Kind       { return ImageKind }
func (TableCell) Kind() Kind   { return TableCellKind }
func (TableRow) Kind() Kind    { return TableRowKind }
func (Table) Kind() Kind       { return TableKind }
func (Paragraph) Kind() Kind   { return ParagraphKind }
func (Span) Kind() Kind        { return SpanKind }
func (Container) Kind() Kind   { return ContainerKind }
func (Unsupported) Kind() Kind { return UnsupportedKind }

func (Text) node()        {}
func (Link) node()        {}
func (Code) node()        {}
func (Quote) node()       {}
func (LineBreak) node()   {}
func (ListItem) node()    {}
func (List) node()        {}
func (Image) node()       {}
func (TableCell) node()   {}
func (TableRow) node()    {}
func (Table) node()       {}
func (Paragraph) node()   {}
func (Span) node()        {}
func (Container) node()   {}
func (Unsupported) node() {}
