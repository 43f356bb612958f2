package cssom

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/nativehtml/style"
	"golang.org/x/net/html"
)

// ApplyTypeRules folds all rules of a stylesheet with type selectors into a
// table of tag styles. The declarations of a rule are merged over the current
// style of every tag named by the rule's selectors, in stylesheet order.
// Rules with other kinds of selectors are ignored.
//
// Returns the number of distinct tags changed.
func ApplyTypeRules(sheet StyleSheet, tags *style.TagStyles) int {
	if sheet == nil || tags == nil || sheet.Empty() {
		return 0
	}
	touched := make(map[string]struct{})
	for _, rule := range sheet.Rules() {
		var names []string
		for _, sel := range rule.Selectors() {
			if tag, ok := TypeSelector(sel); ok {
				names = append(names, tag)
			} else {
				tracer().Debugf("cssom: ignoring selector '%s'", sel)
			}
		}
		if len(names) == 0 {
			continue
		}
		s := style.FromProperties(rule.Declarations())
		if s.IsEmpty() {
			continue
		}
		for _, tag := range names {
			tags.Update(tag, func(current style.Style) style.Style {
				return style.Merge(current, s)
			})
			touched[tag] = struct{}{}
		}
	}
	tracer().Debugf("cssom: stylesheet changed %d tag styles", len(touched))
	return len(touched)
}

// TypeSelector checks if a selector consists of a single type selector, like
// "h1" or "blockquote", and returns the lower case tag name.
//
// A selector qualifies if it has the specificity of one type selector, no
// pseudo-element, and matches a bare element of the serialized tag name.
// The last condition excludes combinators with a universal selector ("* p").
func TypeSelector(sel string) (string, bool) {
	group, err := cascadia.ParseGroup(strings.TrimSpace(sel))
	if err != nil || len(group) != 1 {
		return "", false
	}
	s := group[0]
	if s.Specificity() != (cascadia.Specificity{0, 0, 1}) || s.PseudoElement() != "" {
		return "", false
	}
	tag := s.String()
	if !s.Match(&html.Node{Type: html.ElementNode, Data: tag}) {
		return "", false
	}
	return tag, true
}
