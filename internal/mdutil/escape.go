package mdutil

import (
	"net/url"
	"strings"
)

var htmlEscapes = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#39;",
)

// EscapeHTML escapes the five characters unsafe to emit literally inside
// HTML text or a quoted attribute value.
func EscapeHTML(s string) string {
	return htmlEscapes.Replace(s)
}

// NormalizeURI percent-encodes a link/image target for safe embedding in
// an href/src attribute or an OSC-8 hyperlink payload, leaving characters
// already valid in a URI (including an existing "%XX" escape) untouched.
func NormalizeURI(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	return u.String()
}
