package contentdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/nativehtml/content"
	"github.com/npillmayer/nativehtml/style"
)

func TestDump(t *testing.T) {
	bold := style.Style{Weight: style.WeightBold}
	tree := []content.Node{
		content.Paragraph{Children: []content.Node{
			content.Text{Text: "A "},
			content.Span{Children: []content.Node{content.Text{Text: "bold", Style: bold}}, Style: bold},
		}},
		content.List{Ordered: true, Items: []content.Node{
			content.ListItem{Children: []content.Node{content.Code{Text: "x := 1"}}},
		}},
		content.Table{Rows: []content.TableRow{
			{Cells: []content.TableCell{{Children: []content.Node{content.Image{Src: "a.png"}}}}},
		}},
		content.Container{},
		content.Quote{Text: "q"},
		content.LineBreak{},
		content.Link{Text: "l", Href: "#"},
		content.Unsupported{Markup: "<x></x>"},
	}
	var buf bytes.Buffer
	if err := Fprint(&buf, tree); err != nil {
		t.Fatal(err)
	}
	dump := buf.String()
	t.Logf("\n%s", dump)
	for _, label := range []string{
		"Paragraph", `Text "A "`, "Span {font-weight:700}", `Text "bold" {font-weight:700}`,
		"List (ordered)", "ListItem", `Code "x := 1"`, "Table", "TableRow", "TableCell",
		`Image "a.png"`, "Container", `Quote "q"`, "LineBreak", `Link "l" → "#"`,
		`Unsupported "<x></x>"`,
	} {
		if !strings.Contains(dump, label) {
			t.Errorf("expected dump to contain %q", label)
		}
	}
}

func TestToGraphViz(t *testing.T) {
	tree := []content.Node{
		content.Paragraph{Children: []content.Node{
			content.Text{Text: "hello world\n", Style: style.Style{Weight: style.WeightBold}},
			content.LineBreak{},
		}},
	}
	var buf bytes.Buffer
	if err := ToGraphViz(tree, &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected a digraph, is %q", dot)
	}
	for _, s := range []string{`label="Paragraph"`, "node00001 -> node00002", "node00001 -> node00003", "font-weight:700"} {
		if !strings.Contains(dot, s) {
			t.Errorf("expected diagram to contain %q", s)
		}
	}
}
