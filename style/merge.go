package style

// Merge combines two styles field by field. A field set in overlay wins,
// otherwise the field of base is kept. Merge(s, s) == s.
func Merge(base, overlay Style) Style {
	return Style{
		Color:      pick(base.Color, overlay.Color),
		Background: pick(base.Background, overlay.Background),
		FontSize:   pick(base.FontSize, overlay.FontSize),
		LineHeight: pick(base.LineHeight, overlay.LineHeight),
		Weight:     pick(base.Weight, overlay.Weight),
		Slant:      pick(base.Slant, overlay.Slant),
		Align:      pick(base.Align, overlay.Align),
		Decoration: pick(base.Decoration, overlay.Decoration),
		Family:     pick(base.Family, overlay.Family),
		Shift:      pick(base.Shift, overlay.Shift),
	}
}

// MergeAll folds a list of styles from left to right, i.e. later styles
// override earlier ones.
func MergeAll(styles ...Style) Style {
	var s Style
	for _, overlay := range styles {
		s = Merge(s, overlay)
	}
	return s
}

// pick relies on the zero value of every field type meaning "unspecified".
func pick[T comparable](base, overlay T) T {
	var unset T
	if overlay != unset {
		return overlay
	}
	return base
}
