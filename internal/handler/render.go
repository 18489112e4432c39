package handler

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy lets through line breaks and nothing else.
var textPolicy = bluemonday.NewPolicy().AllowElements("br")

// renderText turns stored plain text into HTML for display.
// Markup typed by the user is escaped and newlines become <br>.
func renderText(s string) string {
	escaped := html.EscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return textPolicy.Sanitize(strings.ReplaceAll(escaped, "\n", "<br>"))
}
