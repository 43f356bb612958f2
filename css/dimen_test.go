package css_test

import (
	"testing"

	"github.com/npillmayer/nativehtml/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	unset := css.Unset()
	switch m := unset.Match(); m {
	case m.Just(nil), m.FontRelative(nil):
		t.Errorf("expected unset dimen to match neither kind, does: %#v", unset)
	}

	em := css.FontRelative(1.5)
	var f float64
	switch m := em.Match(); m {
	case m.Just(nil):
		t.Errorf("expected 1.5em not to be a fixed value")
	case m.FontRelative(&f):
		t.Logf("factor = %g", f)
	default:
		t.Errorf("expected 1.5em to be a font-relative value, isn't: %#v", em)
	}
	if f != 1.5 {
		t.Errorf("expected factor to be 1.5, is %g", f)
	}
}

func TestDimenPattern(t *testing.T) {
	e := css.DimenPattern[string](css.Pixels(16))
	kind := e.OneOf(css.DimenPatterns[string]{
		Just:    "fixed",
		Unset:   "unset",
		Default: "?",
	})
	if kind != "fixed" {
		t.Errorf("expected 16px to match pattern 'fixed', is %q", kind)
	}
	kind = css.DimenPattern[string](css.Unset()).OneOf(css.DimenPatterns[string]{
		Unset: "unset",
		Just:  "fixed",
	})
	if kind != "unset" {
		t.Errorf("expected unset dimension to match pattern 'unset', is %q", kind)
	}
	m := css.DimenPattern[string](css.FontRelative(2))
	kind = m.OneOf(css.DimenPatterns[string]{
		Unset:        "unset",
		Just:         "fixed",
		FontRelative: "em",
	})
	if kind != "em" {
		t.Errorf("expected 2em to match pattern 'em', matched %q", kind)
	}
}

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nativehtml.css")
	defer teardown()
	//
	for _, x := range []struct {
		value string
		d     css.DimenT
	}{
		{"16px", css.Pixels(16)},
		{" 16px ", css.Pixels(16)},
		{"16PX", css.Pixels(16)},
		{"16", css.Pixels(16)},
		{"12.5px", css.Pixels(12.5)},
		{"1.5em", css.FontRelative(1.5)},
		{"0", css.Pixels(0)},
		{"12pt", css.Unset()},
		{"large", css.Unset()},
		{"-4px", css.Unset()},
		{"16 px", css.Unset()},
		{"", css.Unset()},
		{"px", css.Unset()},
	} {
		d := css.ParseDimen(x.value)
		if d != x.d {
			t.Errorf("expected %q to parse as %v, is %v", x.value, x.d, d)
		}
	}
}

func TestDimenResolve(t *testing.T) {
	fontsize := dimen.DU(16) * css.PX
	if d := css.FontRelative(2).Resolve(fontsize, 0); d != 2*fontsize {
		t.Errorf("expected 2em to resolve to %s, is %s", 2*fontsize, d)
	}
	if d := css.Pixels(10).Resolve(fontsize, 0); d != 10*css.PX {
		t.Errorf("expected 10px to resolve to %s, is %s", 10*css.PX, d)
	}
	if d := css.Unset().Resolve(fontsize, 7); d != 7 {
		t.Errorf("expected unset dimension to resolve to fallback, is %s", d)
	}
	if px, ok := css.Pixels(12.5).InPixels(); !ok || px != 12.5 {
		t.Errorf("expected 12.5px to be 12.5 pixels, is %g", px)
	}
	if _, ok := css.FontRelative(2).InPixels(); ok {
		t.Errorf("expected 2em not to have a size in pixels")
	}
	for d, str := range map[css.DimenT]string{
		css.FontRelative(1.25): "1.25em",
		css.Pixels(12):         "12px",
		css.Unset():            "unset",
	} {
		if s := d.String(); s != str {
			t.Errorf("expected string %s, is %q", str, s)
		}
	}
}
