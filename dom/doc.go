/*
Package dom converts HTML parse trees into trees of styled content.

Overview

Input to this package are parse trees of golang.org/x/net/html. Output are
trees of content nodes (package content), which a native renderer may walk
and draw without knowing anything about HTML or CSS.

Conversion is done by a Builder. It classifies every element into a
semantic kind (see Classify), recurses into children and assembles content
nodes, including the irregular nesting rules of lists and tables. For
every node an effective style is computed from three sources, in order of
increasing precedence:

   1. the style inherited from the parent node
   2. the default style of the tag (see style.TagStyles)
   3. the inline style attribute of the element

Fields set in a source with higher precedence override fields of
lower precedence. Fields not set anywhere stay unspecified.

Building never fails. Unknown elements are passed on as opaque markup,
malformed style declarations are ignored, and content which does not fit
into its container (e.g., text between table rows) is dropped.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nativehtml.dom'.
func tracer() tracing.Trace {
	return tracing.Select("nativehtml.dom")
}
