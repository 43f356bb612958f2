/*
Package cssom provides functionality for styling content with CSS stylesheets.

Status

This is a first draft. It is unstable and the API will change without
notice.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Native
renderers usually do not need (and cannot afford) a full styling engine.
We therefore support stylesheets in a very restricted way: rules with
type selectors, like

   h1 { color: #333333; font-size: 40px }
   code, pre { font-family: monospace }

are folded into a table of tag default styles (see style.TagStyles).
Every other selector (classes, ids, combinators, pseudo classes)
is ignored. Selectors are checked with
https://godoc.org/github.com/andybalholm/cascadia.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation may be found in sub-package
douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'nativehtml.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("nativehtml.cssom")
}
