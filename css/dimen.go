package css

import (
	"math"
	"strconv"

	"github.com/npillmayer/tyse/core/dimen"
	tcss "github.com/tdewolff/parse/v2/css"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	relativeMask uint32 = 0xff00
)

// PX is the size of a CSS pixel (1/96 inch, i.e. 3/4 of a point).
var PX dimen.DU = dimen.PT * 3 / 4

// DimenT is an option type for CSS dimensions.
//
// Absolute dimensions are kept as dimen.DU, font-relative ones as a factor
// of the font size. The zero value is unset.
type DimenT struct {
	d      dimen.DU
	factor float64
	flags  uint32
}

/*
type DimenT
	= Unset
	| JustDimen dimen
	| FontRel factor
*/

// Unset returns an unset dimension.
func Unset() DimenT {
	return DimenT{flags: dimenNone}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Pixels creates a fixed CSS dimension of px pixels.
func Pixels(px float64) DimenT {
	return JustDimen(dimen.DU(math.Round(px * float64(PX))))
}

// FontRelative creates a CSS dimension relative to the font size ("em").
func FontRelative(factor float64) DimenT {
	return DimenT{factor: factor, flags: dimenEM}
}

// IsUnset returns true if d is unset.
func (d DimenT) IsUnset() bool {
	return d.flags == dimenNone
}

// IsAbsolute returns true if d is a fixed dimension.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsFontRelative returns true if d is an em-dimension.
func (d DimenT) IsFontRelative() bool {
	return d.flags&relativeMask == dimenEM
}

// InPixels returns a fixed dimension in CSS pixels. For all other kinds of
// dimensions it returns false.
func (d DimenT) InPixels() (float64, bool) {
	var du dimen.DU
	if d.Match().Just(&du) == nil {
		return 0, false
	}
	return float64(du) / float64(PX), true
}

// Resolve returns the absolute value of d, given the current font size.
// Unset dimensions resolve to fallback.
func (d DimenT) Resolve(fontsize dimen.DU, fallback dimen.DU) dimen.DU {
	var du dimen.DU
	var factor float64
	switch m := d.Match(); m {
	case m.Just(&du):
		return du
	case m.FontRelative(&factor):
		return dimen.DU(math.Round(factor * float64(fontsize)))
	}
	return fallback
}

func (d DimenT) String() string {
	px := float64(d.d) / float64(PX)
	return DimenPattern[string](d).OneOf(DimenPatterns[string]{
		Unset:        "unset",
		Just:         strconv.FormatFloat(px, 'f', -1, 64) + "px",
		FontRelative: strconv.FormatFloat(d.factor, 'f', -1, 64) + "em",
		Default:      "unset",
	})
}

// ParseDimen returns an optional dimension from a property value.
// Accepted are non-negative numbers with an optional unit of "px" or "em".
// Numbers without a unit are taken as pixels. It will never return an error,
// even with illegal input, but instead will then return an unset dimension.
func ParseDimen(value string) DimenT {
	tokens := tokenize(value)
	if len(tokens) != 1 {
		return Unset()
	}
	num, unit := tokens[0].data, ""
	switch tokens[0].tt {
	case tcss.NumberToken:
	case tcss.DimensionToken:
		num, unit = splitNumber(tokens[0].data)
	default:
		return Unset()
	}
	x, err := strconv.ParseFloat(num, 64)
	if err != nil || x < 0 || math.IsInf(x, 0) {
		tracer().Debugf("css: illegal dimension '%s'", value)
		return Unset()
	}
	switch unit {
	case "", "px":
		return Pixels(x)
	case "em":
		return FontRelative(x)
	}
	tracer().Debugf("css: unsupported unit '%s' in '%s'", unit, value)
	return Unset()
}

// ---------------------------------------------------------------------------

// Match starts a type switch on the kind of d:
//
//     var du dimen.DU
//     switch m := d.Match(); m {
//     case m.Just(&du):
//         …
//     }
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher matches the kind of a dimension, see DimenT.Match.
type Matcher struct {
	dimen DimenT
}

// Just matches fixed dimensions and stores the value in du, if du is non-nil.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.IsAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// FontRelative matches em-dimensions and stores the factor, if factor is
// non-nil.
func (m *Matcher) FontRelative(factor *float64) *Matcher {
	if m.dimen.IsFontRelative() {
		if factor != nil {
			*factor = m.dimen.factor
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds one result per kind of dimension. Default is the result
// for dimensions of unknown kind.
type DimenPatterns[T any] struct {
	Unset        T
	Just         T
	FontRelative T
	Default      T
}

// DimenPattern selects one of a set of patterns depending on the kind of d.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is an expression evaluating to one of DimenPatterns.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf returns the pattern matching the kind of the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.IsUnset():
		return patterns.Unset
	case m.dimen.IsAbsolute():
		return patterns.Just
	case m.dimen.IsFontRelative():
		return patterns.FontRelative
	}
	return patterns.Default
}
