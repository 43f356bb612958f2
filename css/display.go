package css

import "strings"

// DisplayMode is a type for the layout role of a content node, modelled after
// CSS property "display".
type DisplayMode uint16

// Flags for display mode (outer and inner).
const (
	NoMode       DisplayMode = iota   // unset or error condition
	DisplayNone  DisplayMode = 0x0001 // not displayed at all
	BlockMode    DisplayMode = 0x0002 // CSS block context
	InlineMode   DisplayMode = 0x0004 // CSS inline context
	ListItemMode DisplayMode = 0x0020 // CSS list-item display
	TableMode    DisplayMode = 0x0100 // CSS table display property (inner)
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, ListItemMode, TableMode,
}

var displayModeNames = map[DisplayMode]string{
	DisplayNone:  "none",
	BlockMode:    "block",
	InlineMode:   "inline",
	ListItemMode: "list-item",
	TableMode:    "table",
}

// Outer returns outer mode
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns inner mode
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xfff0
}

// IsBlockLevel return true if it has outer display level of BlockMode.
// Paragraphs, lists, list items and tables are block-level.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp.Outer() == BlockMode
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// String returns all atomic modes set in a display mode, separated by blanks.
func (disp DisplayMode) String() string {
	if disp == NoMode {
		return "no-mode"
	}
	var modes []string
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			modes = append(modes, displayModeNames[m])
		}
	}
	return strings.Join(modes, " ")
}
