// Package sanitize strips dangerous markup from user-submitted article HTML
// before it is persisted or compiled. The allowlist mirrors what the
// rich-text compiler understands: basic inline formatting, block containers,
// headings, lists, links, and inline style on styling carriers.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"b", "strong", "i", "em", "u",
		"p", "div", "span", "br",
		"h1", "h2", "h3",
		"ul", "ol", "li",
		"a",
	)

	p.AllowAttrs("style").OnElements("span", "p", "div", "h1", "h2", "h3")
	p.AllowStyles(
		"color", "font-family", "font-size", "text-align",
		"font-weight", "font-style", "text-decoration", "line-height",
	).OnElements("span", "p", "div", "h1", "h2", "h3")

	p.AllowAttrs("href", "target", "name").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)

	return p
}

// Clean returns input with everything outside the allowlist removed.
func Clean(input string) string {
	return policy.Sanitize(input)
}
