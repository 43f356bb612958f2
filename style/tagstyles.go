package style

import "sync"

// TagStyles is a table of default styles per HTML tag. It is safe for
// concurrent use: reads may run in parallel, writes are serialized.
//
// Changes to a table affect only content built after the change. Builders
// take a Snapshot at the start of every build.
type TagStyles struct {
	mx     sync.RWMutex
	styles map[string]Style
}

// NewTagStyles creates a table pre-populated with the built-in defaults.
func NewTagStyles() *TagStyles {
	t := &TagStyles{styles: make(map[string]Style, len(tagDefaults))}
	for tag, s := range tagDefaults {
		t.styles[tag] = s
	}
	return t
}

// Get returns the style for a tag. Unknown tags have an empty style.
func (t *TagStyles) Get(tag string) Style {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.styles[normalizeTag(tag)]
}

// Set replaces the style for a tag.
func (t *TagStyles) Set(tag string, s Style) {
	tag = normalizeTag(tag)
	t.mx.Lock()
	defer t.mx.Unlock()
	if s.IsEmpty() {
		delete(t.styles, tag)
		return
	}
	t.styles[tag] = s
}

// Update replaces the style for a tag with the result of f, which is called
// with the current style while the table is locked.
func (t *TagStyles) Update(tag string, f func(Style) Style) {
	tag = normalizeTag(tag)
	t.mx.Lock()
	defer t.mx.Unlock()
	s := f(t.styles[tag])
	if s.IsEmpty() {
		delete(t.styles, tag)
		return
	}
	t.styles[tag] = s
}

// Reset restores the built-in default for a tag.
func (t *TagStyles) Reset(tag string) {
	t.Set(tag, DefaultStyle(tag))
}

// Clone returns an independent copy of the table.
func (t *TagStyles) Clone() *TagStyles {
	return &TagStyles{styles: t.copyStyles()}
}

// Snapshot returns an immutable copy of the current table.
func (t *TagStyles) Snapshot() Snapshot {
	return Snapshot{styles: t.copyStyles()}
}

func (t *TagStyles) copyStyles() map[string]Style {
	t.mx.RLock()
	defer t.mx.RUnlock()
	m := make(map[string]Style, len(t.styles))
	for tag, s := range t.styles {
		m[tag] = s
	}
	return m
}

// Snapshot is a read-only view of a TagStyles table at a point in time.
// The zero value is an empty table.
type Snapshot struct {
	styles map[string]Style
}

// Lookup returns the style for a tag, which is expected to be lower case.
func (s Snapshot) Lookup(tag string) Style {
	return s.styles[tag]
}

// Len returns the number of tags with a non-empty style.
func (s Snapshot) Len() int {
	return len(s.styles)
}
