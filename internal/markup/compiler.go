// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markup

import (
	"fmt"
	"html"
	"html/template"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"pageforge/internal/styles"
)

// Result is the compiled layout: a body fragment rooted at the canvas
// container, and the full stylesheet (boilerplate plus one rule per
// element).
type Result struct {
	HTML string
	CSS  string
}

// Compiler turns element lists into HTML and CSS. It is stateless across
// calls; one instance serves all requests.
type Compiler struct {
	dispatch map[string]renderFunc
	baseCSS  string
}

// NewCompiler builds a Compiler with the standard renderer catalog. The
// injected defaults drive the document-level base rule so fallback styling
// lives in one place.
func NewCompiler(defaults styles.Defaults) *Compiler {
	baseRule := fmt.Sprintf("body {\n  font-family: %s, sans-serif;\n  color: #%s;\n}\n\n",
		cssSafe(defaults.FontFamily), defaults.ColorHex)
	return &Compiler{
		dispatch: defaultRenderers(),
		baseCSS:  baseStylesheet + baseRule,
	}
}

// Compile renders every element in input order. Order is significant:
// later elements paint later in source order. Per-element anomalies are
// defaulted, never fatal — one bad element must not abort the batch.
// Relative image URLs are resolved against baseURL.
func (c *Compiler) Compile(elements []Element, baseURL string) Result {
	var body, css strings.Builder
	css.WriteString(c.baseCSS)
	body.WriteString(`<div class="pf-canvas">` + "\n")

	for i := range elements {
		c.compileElement(&elements[i], strconv.Itoa(i), baseURL, &body, &css)
	}

	body.WriteString("</div>")
	return Result{HTML: body.String(), CSS: css.String()}
}

// compileElement emits one CSS rule and one HTML fragment for el, then
// recurses into its children. Child fragments nest inside the parent's
// wrapper; child CSS rules are still emitted as independent top-level rules.
func (c *Compiler) compileElement(el *Element, fallbackID, baseURL string, body, css *strings.Builder) {
	anchor := anchorFor(el, fallbackID)
	css.WriteString(c.cssRule(el, anchor))

	render, ok := c.dispatch[el.Kind()]
	if !ok {
		render = renderGeneric
	}

	fmt.Fprintf(body, `<div id="%s" class="pf-element pf-%s">`, anchor, kindSlug(el))
	body.WriteString(render(el, baseURL))

	for j := range el.Children {
		c.compileElement(&el.Children[j], fallbackID+"-"+strconv.Itoa(j), baseURL, body, css)
	}

	body.WriteString("</div>\n")
}

// dimensionless CSS properties never get a px suffix appended to bare
// numbers.
var dimensionless = map[string]bool{
	"opacity":     true,
	"z-index":     true,
	"font-weight": true,
	"line-height": true,
	"flex":        true,
}

// cssRule builds the absolute-position rule for one element. Style keys are
// sorted so output is deterministic; unknown keys pass through verbatim.
func (c *Compiler) cssRule(el *Element, anchor string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%s {\n", anchor)
	b.WriteString("  position: absolute;\n")
	fmt.Fprintf(&b, "  left: %spx;\n", formatNumber(el.Position.X))
	fmt.Fprintf(&b, "  top: %spx;\n", formatNumber(el.Position.Y))
	if el.Size != nil {
		fmt.Fprintf(&b, "  width: %spx;\n", formatNumber(el.Size.Width))
		fmt.Fprintf(&b, "  height: %spx;\n", formatNumber(el.Size.Height))
	}

	keys := make([]string, 0, len(el.Styles))
	for k := range el.Styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		prop := kebabCase(k)
		if prop == "" {
			continue
		}
		value, ok := cssValue(prop, el.Styles[k])
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s: %s;\n", prop, value)
	}

	b.WriteString("}\n\n")
	return b.String()
}

// cssValue renders one style value. Bare numbers get px appended unless the
// property is dimensionless; strings are assumed pre-formatted.
func cssValue(prop string, v any) (string, bool) {
	switch t := v.(type) {
	case float64:
		n := formatNumber(t)
		if dimensionless[prop] {
			return n, true
		}
		return n + "px", true
	case int:
		return cssValue(prop, float64(t))
	case string:
		s := cssSafe(t)
		if s == "" {
			return "", false
		}
		return s, true
	default:
		return "", false
	}
}

var (
	anchorUnsafe = regexp.MustCompile(`[^a-z0-9-]+`)
	cssUnsafe    = regexp.MustCompile("[{};<>\n\r]")
	camelBound   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// kindSlug is the element kind constrained to anchor-safe characters. It is
// the only form of the kind that may appear in markup or selectors; a kind
// with nothing usable left degrades to the generic box.
func kindSlug(el *Element) string {
	kind := anchorUnsafe.ReplaceAllString(el.Kind(), "")
	if kind == "" {
		kind = "box"
	}
	return kind
}

// anchorFor derives the stable identifier used as both the CSS selector and
// the HTML id: the element kind plus its id, or the positional fallback
// when no id was supplied.
func anchorFor(el *Element, fallbackID string) string {
	id := anchorUnsafe.ReplaceAllString(strings.ToLower(string(el.ID)), "")
	if id == "" {
		id = fallbackID
	}
	return "el-" + kindSlug(el) + "-" + id
}

// kebabCase converts camelCase style keys to CSS property names
// (fontSize → font-size). Already-kebab keys pass through unchanged.
func kebabCase(key string) string {
	key = strings.TrimSpace(key)
	key = camelBound.ReplaceAllString(key, "$1-$2")
	key = strings.ToLower(key)
	return anchorUnsafe.ReplaceAllString(key, "")
}

// cssSafe strips characters that could break out of a declaration or rule.
func cssSafe(s string) string {
	return strings.TrimSpace(cssUnsafe.ReplaceAllString(s, ""))
}

// formatNumber renders a float without trailing zeros (10 not 10.000000).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escape HTML-escapes user-supplied text for both element content and
// attribute positions (wrapped in double quotes).
func escape(s string) string {
	return html.EscapeString(s)
}

// pageTemplate is the shell of the exported standalone page. The stylesheet
// travels as a sibling styles.css file in the bundle.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="styles.css">
</head>
<body>
{{.Body}}
</body>
</html>
`))

// Page wraps the compiled body in the standalone HTML document shell.
// The body fragment is compiler output, escaped at assembly time, so it is
// trusted here; the title is user input and goes through the template.
func (r Result) Page(title string) (string, error) {
	var b strings.Builder
	data := struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: template.HTML(r.HTML)}
	if err := pageTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render page shell: %w", err)
	}
	return b.String(), nil
}
