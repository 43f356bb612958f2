package style

import (
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/nativehtml/css"
	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"
)

// ParseDeclarations parses the text of a CSS declaration block, as found in
// HTML style attributes, into a style, e.g.
//
//     color: red; font-size: 16px
//
// Unknown properties and values which cannot be parsed are skipped. Parsing
// never fails, malformed input simply leaves fields unset.
func ParseDeclarations(text string) Style {
	if strings.TrimSpace(text) == "" {
		return Style{}
	}
	props, err := scanDeclarations(text)
	if err != nil {
		tracer().Debugf("style: cannot parse declarations '%s': %v", text, err)
		props = splitDeclarations(text)
	}
	return FromProperties(props)
}

// scanDeclarations reads a declaration list with the CSS parser in inline
// mode. Malformed declarations are skipped, the parser recovers at the next
// semicolon. An error is returned only if reading the input fails.
func scanDeclarations(text string) ([]KeyValue, error) {
	p := tcss.NewParser(parse.NewInputString(text), true)
	var props []KeyValue
	for {
		gt, _, data := p.Next()
		switch gt {
		case tcss.ErrorGrammar:
			if p.HasParseError() {
				tracer().Debugf("style: skipping declaration: %v", p.Err())
				continue
			}
			if err := p.Err(); err != io.EOF {
				return props, err
			}
			return props, nil
		case tcss.DeclarationGrammar:
			var b strings.Builder
			for _, t := range p.Values() {
				b.Write(t.Data)
			}
			value := strings.TrimSpace(b.String())
			if lower := strings.ToLower(value); strings.HasSuffix(lower, "!important") {
				value = strings.TrimSpace(value[:len(value)-len("!important")])
			}
			props = append(props, KeyValue{Key: string(data), Value: Property(value)})
		}
	}
}

// FromProperties creates a style from a list of CSS properties. Properties are
// applied in order; a value which cannot be parsed never clears a field set by
// an earlier property. Values "inherit" and "initial" leave a field unset.
func FromProperties(props []KeyValue) Style {
	var s Style
	for _, kv := range props {
		key := strings.ToLower(strings.TrimSpace(kv.Key))
		value := Property(strings.ToLower(strings.TrimSpace(kv.Value.String())))
		if value.IsEmpty() || value.IsInherit() || value.IsInitial() {
			continue
		}
		if !s.setProperty(key, value.String()) {
			tracer().Debugf("style: skipping property %s: %s", key, kv.Value)
		}
	}
	return s
}

// setProperty sets the field for a CSS property, if key is known and value is
// valid for it. Value is expected in lower case. It returns false if nothing
// has been set.
func (s *Style) setProperty(key, value string) bool {
	switch key {
	case "color":
		return set(&s.Color, css.ParseColor(value))
	case "background-color", "background":
		return set(&s.Background, css.ParseColor(value))
	case "font-size":
		return set(&s.FontSize, css.ParseDimen(value))
	case "line-height":
		return set(&s.LineHeight, css.ParseDimen(value))
	case "font-weight":
		return set(&s.Weight, parseWeight(value))
	case "font-style":
		return set(&s.Slant, parseSlant(value))
	case "text-align":
		return set(&s.Align, parseAlign(value))
	case "text-decoration":
		return set(&s.Decoration, parseDecoration(value))
	case "font-family":
		return set(&s.Family, parseFamily(value))
	case "vertical-align":
		return set(&s.Shift, parseShift(value))
	}
	return false
}

// set stores v in field if v is specified.
func set[T comparable](field *T, v T) bool {
	var unset T
	if v == unset {
		return false
	}
	*field = v
	return true
}

// --- Keyword values --------------------------------------------------------

func parseWeight(value string) FontWeight {
	switch value {
	case "normal":
		return WeightNormal
	case "bold":
		return WeightBold
	}
	w, err := strconv.Atoi(value)
	if err != nil || w < 100 || w > 900 || w%100 != 0 {
		return WeightUnset
	}
	return FontWeight(w)
}

func parseSlant(value string) Slant {
	if value == "italic" {
		return SlantItalic
	}
	return SlantNormal
}

func parseAlign(value string) TextAlign {
	switch value {
	case "left", "start":
		return AlignStart
	case "center":
		return AlignCenter
	case "right", "end":
		return AlignEnd
	case "justify":
		return AlignJustify
	}
	return AlignUnset
}

func parseDecoration(value string) Decoration {
	switch value {
	case "underline":
		return DecorationUnderline
	case "line-through":
		return DecorationLineThrough
	}
	return DecorationNone
}

// parseFamily picks the first generic family from a list of font families.
// Named families are not supported.
func parseFamily(value string) FontFamily {
	for _, f := range strings.Split(value, ",") {
		f = strings.Trim(strings.TrimSpace(f), `"'`)
		switch f {
		case "monospace":
			return FamilyMonospace
		case "sans-serif":
			return FamilySansSerif
		case "serif":
			return FamilySerif
		}
	}
	return FamilyUnset
}

func parseShift(value string) BaselineShift {
	switch value {
	case "baseline":
		return ShiftNormal
	case "sub":
		return ShiftSub
	case "super":
		return ShiftSuper
	}
	return ShiftUnset
}
