package cssom_test

import (
	"testing"

	"github.com/npillmayer/nativehtml/css"
	"github.com/npillmayer/nativehtml/style"
	"github.com/npillmayer/nativehtml/style/cssom"
	"github.com/npillmayer/nativehtml/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTypeSelector(t *testing.T) {
	for sel, expected := range map[string]string{
		"h1":            "h1",
		" BlockQuote ":  "blockquote",
		"p.intro":       "",
		"#main":         "",
		"div p":         "",
		"ul > li":       "",
		"a:hover":       "",
		"p::first-line": "",
		"*":             "",
		"H2":            "h2",
		"* p":           "",
		"* > p":         "",
		"p:not(*)":      "",
		"h1, h2":        "",
		"p[lang]":       "",
		"":              "",
	} {
		tag, ok := cssom.TypeSelector(sel)
		if ok != (expected != "") || tag != expected {
			t.Errorf("expected selector %q to yield tag %q, is %q", sel, expected, tag)
		}
	}
}

func TestApplyTypeRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nativehtml.cssom")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(`
		h1, h2 { color: red; }
		h1 { font-size: 40px }
		p.intro { font-style: italic }
		code { unknown-property: 1 }
		@media print { p { color: black } }
	`)
	if err != nil {
		t.Fatal(err)
	}
	tags := style.NewTagStyles()
	n := cssom.ApplyTypeRules(sheet, tags)
	if n != 2 {
		t.Errorf("expected 2 tags to be changed, are %d", n)
	}
	red := css.Opaque(0xff, 0, 0)
	h1 := tags.Get("h1")
	if h1.Color != red || h1.FontSize != css.Pixels(40) || h1.Weight != style.WeightBold {
		t.Errorf("expected h1 to be red, 40px and bold, is %v", h1)
	}
	if c := tags.Get("h2").Color; c != red {
		t.Errorf("expected h2 to be red, is %v", c)
	}
	if s := tags.Get("p"); !s.IsEmpty() {
		t.Errorf("expected p to be unstyled, is %v", s)
	}
	if s := tags.Get("code"); s != style.DefaultStyle("code") {
		t.Errorf("expected code to keep its default style, is %v", s)
	}
}

func TestApplyEmptySheet(t *testing.T) {
	tags := style.NewTagStyles()
	if n := cssom.ApplyTypeRules(douceuradapter.Wrap(nil), tags); n != 0 {
		t.Errorf("expected empty stylesheet to change nothing, changed %d", n)
	}
	if n := cssom.ApplyTypeRules(nil, tags); n != 0 {
		t.Errorf("expected nil stylesheet to change nothing, changed %d", n)
	}
}
