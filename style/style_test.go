package style

import (
	"testing"

	"github.com/npillmayer/nativehtml/css"
	"github.com/stretchr/testify/assert"
)

var red = css.Opaque(0xff, 0, 0)

func TestMergeOverlay(t *testing.T) {
	base := Style{Color: red, FontSize: css.Pixels(12), Weight: WeightBold}
	overlay := Style{FontSize: css.Pixels(20), Slant: SlantItalic}
	m := Merge(base, overlay)
	assert.Equal(t, red, m.Color, "color inherited from base")
	assert.Equal(t, css.Pixels(20), m.FontSize, "font size from overlay")
	assert.Equal(t, WeightBold, m.Weight)
	assert.Equal(t, SlantItalic, m.Slant)
	assert.Equal(t, AlignUnset, m.Align, "align set by neither")
}

func TestMergeIdempotent(t *testing.T) {
	for _, s := range []Style{
		{},
		{Color: red},
		DefaultStyle("h1"),
		DefaultStyle("a"),
		{Decoration: DecorationNone, Shift: ShiftSuper, Family: FamilySerif, LineHeight: css.FontRelative(1.2)},
	} {
		if m := Merge(s, s); m != s {
			t.Errorf("expected Merge(s, s) == s, is %v for %v", m, s)
		}
		if m := Merge(Style{}, s); m != s {
			t.Errorf("expected Merge({}, s) == s, is %v for %v", m, s)
		}
		if m := Merge(s, Style{}); m != s {
			t.Errorf("expected Merge(s, {}) == s, is %v for %v", m, s)
		}
	}
}

func TestMergeExplicitNoneWins(t *testing.T) {
	parent := Style{Decoration: DecorationUnderline}
	child := Style{Decoration: DecorationNone}
	if d := Merge(parent, child).Decoration; d != DecorationNone {
		t.Errorf("expected explicit none to override underline, is %s", d)
	}
}

func TestMergeAll(t *testing.T) {
	s := MergeAll(Style{Color: red}, Style{Weight: 300}, Style{Weight: 900})
	assert.Equal(t, Style{Color: red, Weight: 900}, s)
	assert.True(t, MergeAll().IsEmpty())
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, "{}", Style{}.String())
	assert.Equal(t, "{font-size:32px font-weight:700}", DefaultStyle("h1").String())
	assert.Equal(t, "{color:#0000ffff text-decoration:underline}", DefaultStyle("A").String())
}
