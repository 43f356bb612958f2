package dom

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// ElementKind is the semantic kind of an HTML element.
type ElementKind uint8

// Kinds of elements
const (
	UnsupportedElement ElementKind = iota
	HeadingElement     // h1 … h6
	TextElement        // u, mark, sub, sup
	EmphasisElement    // strong, b, em, i
	AnchorElement      // a
	QuoteElement       // blockquote
	CodeElement        // code
	SpanElement        // span
	DivisionElement    // div
	ParagraphElement   // p
	BreakElement       // br
	ListElement        // ul, ol
	ListItemElement    // li
	TableElement       // table
	RowGroupElement    // tbody, thead, tfoot
	RowElement         // tr
	CellElement        // td, th
	ImageElement       // img
)

var elementKindNames = [...]string{
	"unsupported", "heading", "text", "emphasis", "anchor", "quote", "code",
	"span", "division", "paragraph", "break", "list", "list-item", "table",
	"row-group", "row", "cell", "image",
}

func (k ElementKind) String() string {
	if int(k) < len(elementKindNames) {
		return elementKindNames[k]
	}
	return "?"
}

// Classification is the result of classifying an element.
type Classification struct {
	Kind    ElementKind
	Level   int  // heading level 1…6, 0 for non-headings
	Ordered bool // true for ordered lists
}

// Classify maps a tag name to its element kind. Tag names are
// case-insensitive. Tags not known to this package are classified as
// UnsupportedElement.
func Classify(tag string) Classification {
	a := atom.Lookup([]byte(strings.ToLower(strings.TrimSpace(tag))))
	switch a {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return Classification{Kind: HeadingElement, Level: headingLevel(a)}
	case atom.U, atom.Mark, atom.Sub, atom.Sup:
		return Classification{Kind: TextElement}
	case atom.Strong, atom.B, atom.Em, atom.I:
		return Classification{Kind: EmphasisElement}
	case atom.A:
		return Classification{Kind: AnchorElement}
	case atom.Blockquote:
		return Classification{Kind: QuoteElement}
	case atom.Code:
		return Classification{Kind: CodeElement}
	case atom.Span:
		return Classification{Kind: SpanElement}
	case atom.Div:
		return Classification{Kind: DivisionElement}
	case atom.P:
		return Classification{Kind: ParagraphElement}
	case atom.Br:
		return Classification{Kind: BreakElement}
	case atom.Ul:
		return Classification{Kind: ListElement}
	case atom.Ol:
		return Classification{Kind: ListElement, Ordered: true}
	case atom.Li:
		return Classification{Kind: ListItemElement}
	case atom.Table:
		return Classification{Kind: TableElement}
	case atom.Tbody, atom.Thead, atom.Tfoot:
		return Classification{Kind: RowGroupElement}
	case atom.Tr:
		return Classification{Kind: RowElement}
	case atom.Td, atom.Th:
		return Classification{Kind: CellElement}
	case atom.Img:
		return Classification{Kind: ImageElement}
	}
	return Classification{Kind: UnsupportedElement}
}

func headingLevel(a atom.Atom) int {
	name := a.String() // "h1" … "h6"
	return int(name[1] - '0')
}
