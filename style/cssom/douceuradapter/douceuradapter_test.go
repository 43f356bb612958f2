package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

var myhtml = `
<html><head>
<style>
  body { border-color: red; }
</style>
</head><body>
  <p>The quick brown fox jumps over the lazy dog.</p>
  <style>h1 { color: blue; color: green; font-weight: bold !important }</style>
</body>
`

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nativehtml.cssom")
	defer teardown()
	//
	h, err := html.Parse(strings.NewReader(myhtml))
	if err != nil {
		t.Fatal(err)
	}
	sheets := ExtractStyleElements(h)
	if len(sheets) != 2 {
		t.Fatalf("expected 2 style elements, found %d", len(sheets))
	}
	sheets[0].AppendRules(sheets[1])
	rules := sheets[0].Rules()
	assert.Len(t, rules, 2)
	assert.Equal(t, "body", rules[0].Selector())
	r := rules[1]
	assert.Equal(t, []string{"h1"}, r.Selectors())
	assert.Equal(t, []string{"color", "color", "font-weight"}, r.Properties())
	assert.Equal(t, "green", r.Value("color").String())
	assert.True(t, r.IsImportant("font-weight"))
	assert.False(t, r.IsImportant("color"))
	assert.Len(t, r.Declarations(), 3)
}

func TestEmptySheet(t *testing.T) {
	sheet := Wrap(nil)
	assert.True(t, sheet.Empty())
	assert.Empty(t, sheet.Rules())
	assert.Nil(t, ExtractStyleElements(nil))
}
