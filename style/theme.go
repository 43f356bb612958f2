package style

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrTheme is returned for theme documents which cannot be decoded.
var ErrTheme = errors.New("style: invalid theme")

// Theme is a set of tag styles, given as CSS declaration blocks per tag.
type Theme struct {
	Tags map[string]string `yaml:"tags"`
}

// ReadTheme decodes a YAML theme document. An empty document is a valid,
// empty theme.
func ReadTheme(r io.Reader) (Theme, error) {
	var theme Theme
	if err := yaml.NewDecoder(r).Decode(&theme); err != nil && !errors.Is(err, io.EOF) {
		return Theme{}, fmt.Errorf("%w: %v", ErrTheme, err)
	}
	return theme, nil
}

// Apply merges the styles of a theme over the current entries of a tag style
// table. Declarations which cannot be parsed leave the entry untouched.
// It returns the number of tags changed.
func (theme Theme) Apply(tags *TagStyles) int {
	n := 0
	for tag, decl := range theme.Tags {
		s := ParseDeclarations(decl)
		if s.IsEmpty() {
			tracer().Infof("style: theme entry for <%s> has no usable declarations", tag)
			continue
		}
		tags.Update(tag, func(current Style) Style {
			return Merge(current, s)
		})
		n++
	}
	tracer().Debugf("style: theme changed %d tag styles", n)
	return n
}

// LoadTheme reads a YAML theme and applies it to a tag style table.
func LoadTheme(r io.Reader, tags *TagStyles) error {
	theme, err := ReadTheme(r)
	if err != nil {
		return err
	}
	theme.Apply(tags)
	return nil
}
