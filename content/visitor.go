package content

import (
	"strings"

	"github.com/npillmayer/nativehtml/css"
)

// Visitor is implemented by renderers of content trees. Accept calls the
// method matching the type of a node. Visitors are responsible for
// descending into children themselves.
type Visitor interface {
	VisitText(Text)
	VisitLink(Link)
	VisitCode(Code)
	VisitQuote(Quote)
	VisitLineBreak(LineBreak)
	VisitListItem(ListItem)
	VisitList(List)
	VisitImage(Image)
	VisitTableCell(TableCell)
	VisitTableRow(TableRow)
	VisitTable(Table)
	VisitParagraph(Paragraph)
	VisitSpan(Span)
	VisitContainer(Container)
	VisitUnsupported(Unsupported)
}

// Accept dispatches n to the visitor method for its type. A nil node is
// ignored.
func Accept(n Node, v Visitor) {
	switch n := n.(type) {
	case Text:
		v.VisitText(n)
	case Link:
		v.VisitLink(n)
	case Code:
		v.VisitCode(n)
	case Quote:
		v.VisitQuote(n)
	case LineBreak:
		v.VisitLineBreak(n)
	case ListItem:
		v.VisitListItem(n)
	case List:
		v.VisitList(n)
	case Image:
		v.VisitImage(n)
	case TableCell:
		v.VisitTableCell(n)
	case TableRow:
		v.VisitTableRow(n)
	case Table:
		v.VisitTable(n)
	case Paragraph:
		v.VisitParagraph(n)
	case Span:
		v.VisitSpan(n)
	case Container:
		v.VisitContainer(n)
	case Unsupported:
		v.VisitUnsupported(n)
	}
}

// Children returns the child nodes of n, in document order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case ListItem:
		return n.Children
	case List:
		return n.Items
	case TableCell:
		return n.Children
	case TableRow:
		children := make([]Node, len(n.Cells))
		for i, c := range n.Cells {
			children[i] = c
		}
		return children
	case Table:
		children := make([]Node, len(n.Rows))
		for i, r := range n.Rows {
			children[i] = r
		}
		return children
	case Paragraph:
		return n.Children
	case Span:
		return n.Children
	case Container:
		return n.Children
	}
	return nil
}

// Inspect traverses content trees depth-first in document order. It calls
// f for every node; if f returns false, Inspect skips the children of this
// node.
func Inspect(nodes []Node, f func(Node) bool) {
	// explicit stack, content trees may be deep
	stack := make([]Node, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, nodes[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil || !f(n) {
			continue
		}
		children := Children(n)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// PlainText returns the text of content trees, without any markup.
// Line breaks are returned as newlines.
func PlainText(nodes []Node) string {
	var b strings.Builder
	Inspect(nodes, func(n Node) bool {
		switch n := n.(type) {
		case Text:
			b.WriteString(n.Text)
		case Link:
			b.WriteString(n.Text)
		case Code:
			b.WriteString(n.Text)
		case Quote:
			b.WriteString(n.Text)
		case LineBreak:
			b.WriteByte('\n')
		}
		return true
	})
	return b.String()
}

// Display returns the display mode of a node. Text, links, code, line
// breaks, images and spans are inline, everything else is block-level.
func Display(n Node) css.DisplayMode {
	var disp css.DisplayMode
	switch n.(type) {
	case nil:
		return css.NoMode
	case Text, Link, Code, LineBreak, Image, Span:
		disp.Set(css.InlineMode)
	case ListItem:
		disp.Set(css.BlockMode)
		disp.Set(css.ListItemMode)
	case Table, TableRow, TableCell:
		disp.Set(css.BlockMode)
		disp.Set(css.TableMode)
	default:
		disp.Set(css.BlockMode)
	}
	return disp
}

// IsBlockLevel returns true for block-level nodes.
func IsBlockLevel(n Node) bool {
	return Display(n).IsBlockLevel()
}
