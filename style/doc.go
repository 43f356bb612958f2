/*
Package style holds the style record of content nodes and everything needed
to compute it: a parser for CSS declaration blocks, a per-tag table of
default styles, and the merge operation driving the cascade.

A Style is a flat value of optional fields. Every field has a zero value
meaning "unspecified", which is distinct from any explicit value. Styles are
comparable with ==, and merging two styles never allocates:

    effective := style.Merge(inherited, style.Merge(tagDefault, inline))

Fields of the overlay win over fields of the base wherever the overlay
has them set.

Tag default styles live in a TagStyles table. There is no package-global
table: clients create one with NewTagStyles and hand it to whoever builds
content trees. Tables may be customized programmatically, by applying
stylesheets (see package cssom) or by loading a YAML theme:

    tags:
      h1: "font-size: 40px; color: #333333"
      a:  "text-decoration: none"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'nativehtml.style'.
func tracer() tracing.Trace {
	return tracing.Select("nativehtml.style")
}
