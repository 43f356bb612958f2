/*
Package nativehtml converts HTML markup into trees of styled content, for
display by native renderers without embedding a browser engine.

Clients hand markup to a Parser and receive a tree of content nodes, which
is closed over a small set of node types (text runs, links, paragraphs,
lists, tables, images, …; see package content). Every node carries an
effective style, computed from inline style attributes, a table of
per-tag default styles and the style of its parent:

    p := nativehtml.NewParser()
    nodes, err := p.ParseString(`<p style="color: red">A <strong>bold</strong> word</p>`)

Unknown elements are passed through as opaque markup. Malformed markup or
CSS never results in an error: the HTML parser recovers from malformed
markup, and the styling layers silently skip what they cannot understand.

Tag default styles may be customized per parser, either programmatically
(Parser.SetTagStyle), with YAML themes (Parser.LoadTheme), or with
type-selector rules from embedded <style> elements (WithEmbeddedStyles).

Status

This is a first draft. The API may change without notice.

Packages

   css            option types for CSS values
   style          style record, CSS declaration parser, tag default styles, themes
   style/cssom    stylesheet abstraction
   content        content tree node types
   dom            element classification and building of content trees

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nativehtml

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'nativehtml'.
func tracer() tracing.Trace {
	return tracing.Select("nativehtml")
}
