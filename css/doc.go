/*
Package css provides option types for CSS property values.

CSS values arrive as text, and a lot of them are malformed, partial or
simply not supported by a native renderer. This package shields clients
from the textual nature of CSS values: every value is parsed into a small
option type, which is either set to a concrete value or "unset". Parsing
never fails. Illegal input results in an unset value, which lets other
layers of the style cascade show through.

Values are tokenized with the CSS lexer of github.com/tdewolff/parse.

Status

This is a first draft. The API may change without notice.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	parse "github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"
)

// tracer traces with key 'nativehtml.css'.
func tracer() tracing.Trace {
	return tracing.Select("nativehtml.css")
}

// token is a non-whitespace CSS token of a property value.
type token struct {
	tt   tcss.TokenType
	data string
}

// tokenize splits a property value into CSS tokens, dropping whitespace and
// comments.
func tokenize(value string) []token {
	lexer := tcss.NewLexer(parse.NewInput(strings.NewReader(value)))
	var tokens []token
	for {
		tt, data := lexer.Next()
		switch tt {
		case tcss.ErrorToken: // EOF or garbage, both end the value
			return tokens
		case tcss.WhitespaceToken, tcss.CommentToken:
			continue
		}
		tokens = append(tokens, token{tt: tt, data: string(data)})
	}
}

// splitNumber splits the data of a dimension token into number and unit.
func splitNumber(s string) (string, string) {
	end := 0
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			end = i + 1
		} else {
			break
		}
	}
	return s[:end], strings.ToLower(s[end:])
}
