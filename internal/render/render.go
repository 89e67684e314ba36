// Package render builds the HTML fragments for the public site pages.
// All user-entered content passes through escaping or sanitization
// before it reaches a page.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// richPolicy allows basic formatting in long-form content fields.
// strictPolicy strips all markup from single-line fields.
var (
	richPolicy   = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// Text escapes a plain text value and preserves line breaks
func Text(content string) string {
	safe := html.EscapeString(content)
	return strings.ReplaceAll(safe, "\n", "<br>")
}

// Plain strips any markup from a single-line value
func Plain(content string) string {
	return strictPolicy.Sanitize(content)
}

// Rich sanitizes long-form content, keeping basic formatting tags
func Rich(content string) string {
	return richPolicy.Sanitize(content)
}

// Section wraps a heading and body into one page section
func Section(id, heading, body string) string {
	return fmt.Sprintf(`<section id="%s">
<h2>%s</h2>
%s
</section>`, html.EscapeString(id), Plain(heading), body)
}

// Page wraps body content in the full HTML document shell
func Page(title, css, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>%s</title>
	<style>
%s
	</style>
</head>
<body>
%s
</body>
</html>
`, Plain(title), css, body)
}
