/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/nativehtml/style"
	"github.com/npillmayer/nativehtml/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'nativehtml.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("nativehtml.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Parse parses the text of a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("douceuradapter: cannot parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(c *css.Stylesheet) *CSSStyles {
	if c == nil {
		return &CSSStyles{}
	}
	return &CSSStyles{*c}
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet. Only stylesheets of
// this package are supported, others are ignored.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok || othercss == nil {
		tracer().Errorf("douceuradapter: cannot append rules of stylesheet type %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r == nil {
			continue
		}
		rules = append(rules, Rule{rule: r})
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	rule *css.Rule
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.rule.Prelude
}

// Selectors returns the selectors of a qualified rule. At-rules have none.
func (r Rule) Selectors() []string {
	return r.rule.Selectors
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.rule.Declarations))
	for _, d := range r.rule.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for given key with this rule, e.g. "15px".
// If a key is declared more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	v := style.NullStyle
	for _, d := range r.rule.Declarations {
		if strings.EqualFold(d.Property, key) {
			v = style.Property(d.Value)
		}
	}
	return v
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.rule.Declarations {
		if strings.EqualFold(d.Property, key) && d.Important {
			return true
		}
	}
	return false
}

// Declarations returns all declarations of the rule in source order.
func (r Rule) Declarations() []style.KeyValue {
	kv := make([]style.KeyValue, 0, len(r.rule.Declarations))
	for _, d := range r.rule.Declarations {
		kv = append(kv, style.KeyValue{Key: d.Property, Value: style.Property(d.Value)})
	}
	return kv
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements searches an HTML parse tree for embedded <style>s.
// It returns the content of style-elements as style sheets, in document order.
// Style elements which cannot be parsed are skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	if htmldoc == nil {
		return nil
	}
	var sheets []*CSSStyles
	goquery.NewDocumentFromNode(htmldoc).Find("style").Each(func(_ int, sel *goquery.Selection) {
		c, err := Parse(sel.Text())
		if err != nil {
			tracer().Infof("skipping <style> element: %v", err)
			return
		}
		sheets = append(sheets, c)
	})
	return sheets
}
