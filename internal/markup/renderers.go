// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markup

import (
	"fmt"
	"strings"
)

// renderFunc produces the inner HTML fragment for one element. Every
// function here must be total: missing data renders placeholders, never an
// error.
type renderFunc func(el *Element, baseURL string) string

// defaultSubmitText labels form submit buttons when the element supplies
// none.
const defaultSubmitText = "Submit"

// imageFallbackSrc is the inline SVG swapped in by the onerror handler when
// an image fails to load. Exported pages are standalone, so the original
// host may be unreachable at view time; a visible placeholder beats a
// broken-image box.
const imageFallbackSrc = "data:image/svg+xml,%3Csvg%20xmlns=%27http://www.w3.org/2000/svg%27%20width=%27200%27%20height=%27150%27%3E%3Crect%20width=%27200%27%20height=%27150%27%20fill=%27%23e5e7eb%27/%3E%3Ctext%20x=%27100%27%20y=%2780%27%20text-anchor=%27middle%27%20fill=%27%236b7280%27%20font-family=%27sans-serif%27%20font-size=%2714%27%3EImage%20unavailable%3C/text%3E%3C/svg%3E"

// defaultRenderers returns the element kind → renderer catalog. Adding a
// kind is a table entry; unknown kinds fall back to renderGeneric at
// dispatch time.
func defaultRenderers() map[string]renderFunc {
	return map[string]renderFunc{
		"text":      renderText,
		"paragraph": renderText,
		"header":    renderHeader,
		"heading":   renderHeader,
		"image":     renderImage,
		"button":    renderButton,
		"form":      renderForm,
		"navbar":    renderNavbar,
		"nav":       renderNavbar,
		"footer":    renderFooter,
		"list":      renderList,
		"grid":      renderGrid,
		"card":      renderCard,
		"map":       renderMap,
		"section":   renderSection,
		"container": renderSection,
	}
}

func renderText(el *Element, _ string) string {
	return "<p>" + escape(el.Text()) + "</p>"
}

func renderHeader(el *Element, _ string) string {
	return "<h1>" + escape(el.Text()) + "</h1>"
}

func renderButton(el *Element, _ string) string {
	text := el.Text()
	if text == "" {
		text = "Button"
	}
	return `<button type="button">` + escape(text) + "</button>"
}

func renderImage(el *Element, baseURL string) string {
	src := resolveImageURL(el.ImageURL, baseURL)
	alt := el.Text()
	if alt == "" {
		alt = "Layout image"
	}
	return fmt.Sprintf(
		`<img src="%s" alt="%s" onerror="this.onerror=null;this.src='%s';">`,
		escape(src), escape(alt), imageFallbackSrc,
	)
}

func renderForm(el *Element, _ string) string {
	var b strings.Builder
	b.WriteString(`<form class="pf-form">`)
	for i, field := range el.Fields {
		b.WriteString(renderFormField(&field, i))
	}
	submit := el.ButtonText
	if submit == "" {
		submit = defaultSubmitText
	}
	fmt.Fprintf(&b, `<button type="submit">%s</button>`, escape(submit))
	b.WriteString("</form>")
	return b.String()
}

// allowedInputTypes is the input type allowlist; anything else renders as a
// plain text input.
var allowedInputTypes = map[string]bool{
	"text": true, "email": true, "password": true, "number": true,
	"tel": true, "url": true, "date": true, "checkbox": true, "radio": true,
}

func renderFormField(field *FormField, index int) string {
	var b strings.Builder
	name := fmt.Sprintf("field-%d", index)

	b.WriteString(`<div class="pf-form-field">`)
	if field.Label != "" {
		fmt.Fprintf(&b, `<label for="%s">%s</label>`, name, escape(field.Label))
	}

	required := ""
	if field.Required {
		required = " required"
	}

	switch strings.ToLower(field.Type) {
	case "textarea":
		fmt.Fprintf(&b, `<textarea id="%s" name="%s" placeholder="%s"%s></textarea>`,
			name, name, escape(field.Placeholder), required)
	case "select":
		fmt.Fprintf(&b, `<select id="%s" name="%s"%s>`, name, name, required)
		for _, opt := range field.Options {
			fmt.Fprintf(&b, `<option value="%s">%s</option>`, escape(opt), escape(opt))
		}
		b.WriteString("</select>")
	default:
		inputType := strings.ToLower(field.Type)
		if !allowedInputTypes[inputType] {
			inputType = "text"
		}
		fmt.Fprintf(&b, `<input type="%s" id="%s" name="%s" placeholder="%s"%s>`,
			inputType, name, name, escape(field.Placeholder), required)
	}

	b.WriteString("</div>")
	return b.String()
}

func renderNavbar(el *Element, baseURL string) string {
	var b strings.Builder
	b.WriteString(`<nav class="pf-navbar">`)

	brand := el.Text()
	if brand == "" {
		brand = "Brand"
	}
	fmt.Fprintf(&b, `<span class="pf-navbar-brand">%s</span>`, escape(brand))

	b.WriteString("<ul>")
	for _, item := range el.Items {
		fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`,
			escape(resolveLinkURL(item.URL)), escape(itemLabel(item, "Link")))
	}
	b.WriteString("</ul></nav>")
	return b.String()
}

func renderFooter(el *Element, _ string) string {
	var b strings.Builder
	b.WriteString(`<footer class="pf-footer">`)
	for _, col := range el.Columns {
		b.WriteString(`<div class="pf-footer-column">`)
		if col.Title != "" {
			fmt.Fprintf(&b, "<h4>%s</h4>", escape(col.Title))
		}
		b.WriteString("<ul>")
		for _, link := range col.Links {
			fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`,
				escape(resolveLinkURL(link.URL)), escape(itemLabel(link, "Link")))
		}
		b.WriteString("</ul></div>")
	}
	b.WriteString("</footer>")
	return b.String()
}

// placeholderItemCount is how many stub entries list/grid/card elements
// render when the payload supplies no item data.
const placeholderItemCount = 3

func renderList(el *Element, _ string) string {
	var b strings.Builder
	b.WriteString(`<ul class="pf-list">`)
	if len(el.Items) == 0 {
		for i := 1; i <= placeholderItemCount; i++ {
			fmt.Fprintf(&b, "<li>List item %d</li>", i)
		}
	} else {
		for _, item := range el.Items {
			fmt.Fprintf(&b, "<li>%s</li>", escape(itemLabel(item, "List item")))
		}
	}
	b.WriteString("</ul>")
	return b.String()
}

func renderGrid(el *Element, _ string) string {
	var b strings.Builder
	b.WriteString(`<div class="pf-grid">`)
	if len(el.Items) == 0 {
		for i := 1; i <= placeholderItemCount+1; i++ {
			fmt.Fprintf(&b, `<div class="pf-grid-cell">Cell %d</div>`, i)
		}
	} else {
		for _, item := range el.Items {
			fmt.Fprintf(&b, `<div class="pf-grid-cell">%s</div>`, escape(itemLabel(item, "Cell")))
		}
	}
	b.WriteString("</div>")
	return b.String()
}

func renderCard(el *Element, _ string) string {
	var b strings.Builder
	b.WriteString(`<div class="pf-card">`)
	title := el.CustomText
	if title == "" {
		title = "Card title"
	}
	fmt.Fprintf(&b, "<h3>%s</h3>", escape(title))
	bodyText := el.Content
	if bodyText == "" {
		bodyText = "Card body text."
	}
	fmt.Fprintf(&b, "<p>%s</p>", escape(bodyText))
	b.WriteString("</div>")
	return b.String()
}

func renderMap(el *Element, _ string) string {
	label := el.Text()
	if label == "" {
		label = "Map"
	}
	return `<div class="pf-map">` + escape(label) + `</div>`
}

func renderSection(el *Element, _ string) string {
	if text := el.Text(); text != "" {
		return `<div class="pf-section-body">` + escape(text) + "</div>"
	}
	return ""
}

// renderGeneric is the open-ended catalog's default arm: raw content in a
// plain container. Dispatch never fails on an unknown kind.
func renderGeneric(el *Element, _ string) string {
	if text := el.Text(); text != "" {
		return escape(text)
	}
	return ""
}

func itemLabel(item Item, fallback string) string {
	if item.Label != "" {
		return item.Label
	}
	return fallback
}

// resolveImageURL returns an absolute URL for an image, prefixing baseURL
// when the value is relative. Unknown schemes degrade to the placeholder —
// generated pages must not carry executable URLs.
func resolveImageURL(raw, baseURL string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return imageFallbackSrc
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "data:image/") {
		return raw
	}
	if strings.Contains(raw, ":") {
		return imageFallbackSrc
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(raw, "/")
}

// resolveLinkURL keeps http(s)/mailto/relative hrefs and neuters anything
// else to "#".
func resolveLinkURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "#"
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "mailto:") {
		return raw
	}
	if strings.Contains(raw, ":") {
		return "#"
	}
	return raw
}
