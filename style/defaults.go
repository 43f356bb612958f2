package style

import (
	"strings"

	"github.com/npillmayer/nativehtml/css"
)

// Built-in default styles for HTML tags, comparable to a user agent
// stylesheet. Tags not listed have an empty default style.
var tagDefaults = map[string]Style{
	"h1":     {FontSize: css.Pixels(32), Weight: WeightBold},
	"h2":     {FontSize: css.Pixels(28), Weight: 600},
	"h3":     {FontSize: css.Pixels(24), Weight: 500},
	"h4":     {FontSize: css.Pixels(20), Weight: WeightNormal},
	"h5":     {FontSize: css.Pixels(16), Weight: 300},
	"h6":     {FontSize: css.Pixels(14), Weight: 100},
	"u":      {Decoration: DecorationUnderline},
	"b":      {Weight: WeightBold},
	"strong": {Weight: WeightBold},
	"em":     {Slant: SlantItalic},
	"i":      {Slant: SlantItalic},
	"sub":    {Shift: ShiftSub},
	"sup":    {Shift: ShiftSuper},
	"mark":   {Background: css.Opaque(0xff, 0xff, 0x00)}, // highlight, text color is kept
	"a":      {Color: css.Opaque(0x00, 0x00, 0xff), Decoration: DecorationUnderline},
	"code":   {Family: FamilyMonospace},
}

// DefaultStyle returns the built-in default style for a tag. Tag names are
// case-insensitive.
func DefaultStyle(tag string) Style {
	return tagDefaults[normalizeTag(tag)]
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
