package css

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	tcss "github.com/tdewolff/parse/v2/css"
)

// ColorT is an option type for CSS colors. The zero value is unset.
type ColorT struct {
	c   color.RGBA
	set bool
}

// NoColor returns an unset color.
func NoColor() ColorT {
	return ColorT{}
}

// RGBA creates a color from its non-premultiplied components.
func RGBA(r, g, b, a uint8) ColorT {
	return ColorT{c: color.RGBA{R: r, G: g, B: b, A: a}, set: true}
}

// Opaque creates a fully opaque color.
func Opaque(r, g, b uint8) ColorT {
	return RGBA(r, g, b, 0xff)
}

// IsSet returns true if c holds a color value.
func (c ColorT) IsSet() bool {
	return c.set
}

// Color returns the color value, if set.
func (c ColorT) Color() (color.RGBA, bool) {
	return c.c, c.set
}

func (c ColorT) String() string {
	if !c.set {
		return "unset"
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.c.R, c.c.G, c.c.B, c.c.A)
}

// Named colors we know of. This is a small fixed set, not the full list
// of CSS named colors.
var namedColors = map[string]ColorT{
	"black":   Opaque(0x00, 0x00, 0x00),
	"white":   Opaque(0xff, 0xff, 0xff),
	"red":     Opaque(0xff, 0x00, 0x00),
	"blue":    Opaque(0x00, 0x00, 0xff),
	"green":   Opaque(0x00, 0x80, 0x00),
	"gray":    Opaque(0x80, 0x80, 0x80),
	"grey":    Opaque(0x80, 0x80, 0x80),
	"yellow":  Opaque(0xff, 0xff, 0x00),
	"magenta": Opaque(0xff, 0x00, 0xff),
	"cyan":    Opaque(0x00, 0xff, 0xff),
}

// ParseColor returns an optional color from a property value.
// Accepted are named colors, hex colors of the form #RRGGBB and #RRGGBBAA, and
// the functional notations rgb(r,g,b) and rgba(r,g,b,a), with a in [0…1].
//
// ParseColor will never return an error, even with illegal input, but instead
// will then return an unset color.
func ParseColor(value string) ColorT {
	tokens := tokenize(strings.ToLower(value))
	if len(tokens) == 0 {
		return NoColor()
	}
	var c ColorT
	switch t := tokens[0]; t.tt {
	case tcss.IdentToken:
		if len(tokens) == 1 {
			c = namedColors[t.data]
		}
	case tcss.HashToken:
		if len(tokens) == 1 {
			c = hexColor(strings.TrimPrefix(t.data, "#"))
		}
	case tcss.FunctionToken:
		c = rgbColor(t.data, tokens[1:])
	}
	if !c.IsSet() {
		tracer().Debugf("css: cannot parse color '%s'", value)
	}
	return c
}

func hexColor(hex string) ColorT {
	if len(hex) != 6 && len(hex) != 8 {
		return NoColor()
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return NoColor()
	}
	if len(hex) == 6 {
		return Opaque(uint8(n>>16), uint8(n>>8), uint8(n))
	}
	return RGBA(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n))
}

// rgbColor parses the arguments of rgb(…) and rgba(…). args is the token
// sequence following the function token, including the closing parenthesis.
func rgbColor(fn string, args []token) ColorT {
	var arity int
	switch fn {
	case "rgb(":
		arity = 3
	case "rgba(":
		arity = 4
	default:
		return NoColor()
	}
	if len(args) != 2*arity || args[len(args)-1].tt != tcss.RightParenthesisToken {
		return NoColor()
	}
	var ch [3]uint8
	alpha := uint8(0xff)
	for i := 0; i < arity; i++ {
		arg, sep := args[2*i], args[2*i+1]
		if arg.tt != tcss.NumberToken {
			return NoColor()
		}
		if i < arity-1 && sep.tt != tcss.CommaToken {
			return NoColor()
		}
		if i == 3 {
			a, err := strconv.ParseFloat(arg.data, 64)
			if err != nil || a < 0 || a > 1 {
				return NoColor()
			}
			alpha = uint8(a * 255)
			continue
		}
		n, err := strconv.Atoi(arg.data)
		if err != nil || n < 0 || n > 255 {
			return NoColor()
		}
		ch[i] = uint8(n)
	}
	return RGBA(ch[0], ch[1], ch[2], alpha)
}
