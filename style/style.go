package style

import (
	"fmt"
	"strings"

	"github.com/npillmayer/nativehtml/css"
)

// Style is the resolved style of a content node. The zero value is an empty
// style with every field unspecified.
type Style struct {
	Color      css.ColorT
	Background css.ColorT
	FontSize   css.DimenT
	LineHeight css.DimenT
	Weight     FontWeight
	Slant      Slant
	Align      TextAlign
	Decoration Decoration
	Family     FontFamily
	Shift      BaselineShift
}

// IsEmpty returns true if no field of s is set.
func (s Style) IsEmpty() bool {
	return s == Style{}
}

// String returns a compact form listing the fields set, e.g.
//
//     {font-size:32px font-weight:700}
//
func (s Style) String() string {
	var b strings.Builder
	b.WriteByte('{')
	add := func(key string, value fmt.Stringer) {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteByte(':')
		b.WriteString(value.String())
	}
	if s.Color.IsSet() {
		add("color", s.Color)
	}
	if s.Background.IsSet() {
		add("background-color", s.Background)
	}
	if !s.FontSize.IsUnset() {
		add("font-size", s.FontSize)
	}
	if !s.LineHeight.IsUnset() {
		add("line-height", s.LineHeight)
	}
	if s.Weight != WeightUnset {
		add("font-weight", s.Weight)
	}
	if s.Slant != SlantUnset {
		add("font-style", s.Slant)
	}
	if s.Align != AlignUnset {
		add("text-align", s.Align)
	}
	if s.Decoration != DecorationUnset {
		add("text-decoration", s.Decoration)
	}
	if s.Family != FamilyUnset {
		add("font-family", s.Family)
	}
	if s.Shift != ShiftUnset {
		add("vertical-align", s.Shift)
	}
	b.WriteByte('}')
	return b.String()
}

// --- Field types -----------------------------------------------------------

// FontWeight is a numeric font weight, 100…900. 0 means unspecified.
type FontWeight uint16

// Font weights with a CSS keyword.
const (
	WeightUnset  FontWeight = 0
	WeightNormal FontWeight = 400
	WeightBold   FontWeight = 700
)

func (w FontWeight) String() string {
	if w == WeightUnset {
		return "unset"
	}
	return fmt.Sprintf("%d", w)
}

// Slant is the font style, normal or italic.
type Slant uint8

// Slants
const (
	SlantUnset Slant = iota
	SlantNormal
	SlantItalic
)

func (s Slant) String() string {
	switch s {
	case SlantNormal:
		return "normal"
	case SlantItalic:
		return "italic"
	}
	return "unset"
}

// TextAlign is the horizontal alignment of text. Left and right are mapped to
// start and end.
type TextAlign uint8

// Text alignments
const (
	AlignUnset TextAlign = iota
	AlignStart
	AlignCenter
	AlignEnd
	AlignJustify
)

func (a TextAlign) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignJustify:
		return "justify"
	}
	return "unset"
}

// Decoration is a text decoration line. DecorationNone is an explicit
// "no decoration", which overrides decorations of parents.
type Decoration uint8

// Decorations
const (
	DecorationUnset Decoration = iota
	DecorationNone
	DecorationUnderline
	DecorationLineThrough
)

func (d Decoration) String() string {
	switch d {
	case DecorationNone:
		return "none"
	case DecorationUnderline:
		return "underline"
	case DecorationLineThrough:
		return "line-through"
	}
	return "unset"
}

// FontFamily is a generic font family.
type FontFamily uint8

// Generic font families
const (
	FamilyUnset FontFamily = iota
	FamilyMonospace
	FamilySansSerif
	FamilySerif
)

func (f FontFamily) String() string {
	switch f {
	case FamilyMonospace:
		return "monospace"
	case FamilySansSerif:
		return "sans-serif"
	case FamilySerif:
		return "serif"
	}
	return "unset"
}

// BaselineShift moves text below or above the baseline (subscript,
// superscript).
type BaselineShift uint8

// Baseline shifts
const (
	ShiftUnset BaselineShift = iota
	ShiftNormal
	ShiftSub
	ShiftSuper
)

func (b BaselineShift) String() string {
	switch b {
	case ShiftNormal:
		return "baseline"
	case ShiftSub:
		return "sub"
	case ShiftSuper:
		return "super"
	}
	return "unset"
}
