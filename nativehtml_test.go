package nativehtml

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/npillmayer/nativehtml/content"
	"github.com/npillmayer/nativehtml/content/contentdbg"
	"github.com/npillmayer/nativehtml/css"
	"github.com/npillmayer/nativehtml/dom"
	"github.com/npillmayer/nativehtml/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

var red = css.Opaque(0xff, 0, 0)

func TestParseFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nativehtml")
	defer teardown()
	//
	p := NewParser()
	nodes, err := p.ParseString(`<h1>Title</h1>Some <b>text</b><ul><li>item</li></ul>`)
	assert.NoError(t, err)
	t.Logf("\n%s", contentdbg.Dump(nodes))
	kinds := make([]content.Kind, len(nodes))
	for i, n := range nodes {
		kinds[i] = n.Kind()
	}
	assert.Equal(t, []content.Kind{
		content.TextKind, content.TextKind, content.SpanKind, content.ListKind,
	}, kinds)
	assert.Equal(t, "TitleSome textitem", content.PlainText(nodes))
}

func TestParseDocumentIgnoresHead(t *testing.T) {
	nodes, err := NewParser().ParseString(`<!DOCTYPE html><html><head><title>T</title>
		<style>p { color: red }</style></head><body><p>x</p></body></html>`)
	assert.NoError(t, err)
	assert.Equal(t, []content.Node{
		content.Paragraph{Children: []content.Node{content.Text{Text: "x"}}},
	}, nodes)
}

func TestEmbeddedStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nativehtml")
	defer teardown()
	//
	markup := `<html><head><style>p { color: red } p.x { color: blue }</style></head>
		<body><p>x</p><style>h1 { font-size: 40px }</style><h1>T</h1></body></html>`
	p := NewParser(WithEmbeddedStyles(true))
	nodes, err := p.ParseString(markup)
	assert.NoError(t, err)
	assert.Equal(t, []content.Node{
		content.Paragraph{Children: []content.Node{content.Text{Text: "x", Style: style.Style{Color: red}}},
			Style: style.Style{Color: red}},
		content.Text{Text: "T", Style: style.Style{FontSize: css.Pixels(40), Weight: style.WeightBold}},
	}, nodes)
	assert.True(t, p.TagStyles().Get("p").IsEmpty(), "parser's table must not be changed by embedded styles")
	//
	nodes, err = NewParser().ParseString(markup)
	assert.NoError(t, err)
	assert.Len(t, nodes, 3)
	assert.Equal(t, content.UnsupportedKind, nodes[1].Kind(), "style element without embedded styles")
}

func TestParserTagStyles(t *testing.T) {
	p := NewParser()
	before, _ := p.ParseString("<h1>T</h1>")
	p.SetTagStyle("h1", style.Style{Color: red})
	after, _ := p.ParseString("<h1>T</h1>")
	assert.Equal(t, style.DefaultStyle("h1"), before[0].(content.Text).Style)
	assert.Equal(t, style.Style{Color: red}, after[0].(content.Text).Style)
	//
	err := p.LoadTheme(strings.NewReader("tags:\n  h1: \"font-weight: 300\"\n"))
	assert.NoError(t, err)
	themed, _ := p.ParseString("<h1>T</h1>")
	assert.Equal(t, style.Style{Color: red, Weight: 300}, themed[0].(content.Text).Style)
	assert.Error(t, p.LoadTheme(strings.NewReader("tags: [1, 2")))
}

func TestParserWithBuilderOptions(t *testing.T) {
	tags := style.NewTagStyles()
	tags.Set("p", style.Style{Align: style.AlignCenter})
	p := NewParser(WithBuilderOptions(
		dom.WithTagStyles(tags),
		dom.WithIgnoredTags("script"),
		dom.WithHandler("hr", dom.HandlerFunc(func(*html.Node, style.Style) []content.Node {
			return []content.Node{content.LineBreak{}}
		})),
	))
	assert.Same(t, tags, p.TagStyles())
	nodes, err := p.ParseString(`<p>x</p><script>x()</script><hr>`)
	assert.NoError(t, err)
	assert.Equal(t, []content.Node{
		content.Paragraph{Children: []content.Node{content.Text{Text: "x", Style: style.Style{Align: style.AlignCenter}}},
			Style: style.Style{Align: style.AlignCenter}},
		content.LineBreak{},
	}, nodes)
}

func TestParseErrors(t *testing.T) {
	_, err := NewParser().Parse(iotest.ErrReader(errors.New("broken")))
	assert.ErrorIs(t, err, ErrMarkup)
	nodes, err := NewParser().ParseString("")
	assert.NoError(t, err)
	assert.Empty(t, nodes)
}
