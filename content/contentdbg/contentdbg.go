/*
Package contentdbg implements helpers to debug a content tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package contentdbg

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/nativehtml/content"
	"github.com/npillmayer/nativehtml/style"
	tp "github.com/xlab/treeprint"
)

// Dump returns an indented tree representation of content trees, e.g.
//
//    .
//    └── Paragraph {color:#ff0000ff}
//        ├── Text "A " {color:#ff0000ff}
//        └── Span {color:#ff0000ff font-weight:700}
//            └── Text "bold" {color:#ff0000ff font-weight:700}
//
func Dump(nodes []content.Node) string {
	p := printer{tree: tp.New()}
	for _, n := range nodes {
		content.Accept(n, p)
	}
	return p.tree.String()
}

// Fprint writes the output of Dump to w.
func Fprint(w io.Writer, nodes []content.Node) error {
	_, err := io.WriteString(w, Dump(nodes))
	return err
}

// printer is a content.Visitor adding a treeprint node for every content node.
type printer struct {
	tree tp.Tree
}

var _ content.Visitor = printer{}

func (p printer) leaf(format string, args ...interface{}) {
	p.tree.AddNode(fmt.Sprintf(format, args...))
}

func (p printer) branch(label string, children []content.Node) {
	sub := printer{tree: p.tree.AddBranch(label)}
	for _, ch := range children {
		content.Accept(ch, sub)
	}
}

func styled(label string, s style.Style) string {
	if s.IsEmpty() {
		return label
	}
	return label + " " + s.String()
}

func (p printer) VisitText(n content.Text) {
	p.leaf("%s", styled("Text "+strconv.Quote(n.Text), n.Style))
}

func (p printer) VisitLink(n content.Link) {
	p.leaf("%s", styled(fmt.Sprintf("Link %q → %q", n.Text, n.Href), n.Style))
}

func (p printer) VisitCode(n content.Code) {
	p.leaf("Code %q", n.Text)
}

func (p printer) VisitQuote(n content.Quote) {
	p.leaf("Quote %q", n.Text)
}

func (p printer) VisitLineBreak(content.LineBreak) {
	p.leaf("LineBreak")
}

func (p printer) VisitListItem(n content.ListItem) {
	p.branch("ListItem", n.Children)
}

func (p printer) VisitList(n content.List) {
	label := "List"
	if n.Ordered {
		label = "List (ordered)"
	}
	p.branch(label, n.Items)
}

func (p printer) VisitImage(n content.Image) {
	p.leaf("Image %q alt=%q", n.Src, n.Alt)
}

func (p printer) VisitTableCell(n content.TableCell) {
	p.branch("TableCell", n.Children)
}

func (p printer) VisitTableRow(n content.TableRow) {
	p.branch("TableRow", content.Children(n))
}

func (p printer) VisitTable(n content.Table) {
	p.branch("Table", content.Children(n))
}

func (p printer) VisitParagraph(n content.Paragraph) {
	p.branch(styled("Paragraph", n.Style), n.Children)
}

func (p printer) VisitSpan(n content.Span) {
	p.branch(styled("Span", n.Style), n.Children)
}

func (p printer) VisitContainer(n content.Container) {
	p.branch("Container", n.Children)
}

func (p printer) VisitUnsupported(n content.Unsupported) {
	p.leaf("Unsupported %q", n.Markup)
}
