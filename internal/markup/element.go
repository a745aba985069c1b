// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markup compiles an ordered list of positioned, typed, styled
// layout elements into standalone HTML and CSS. Element kinds are resolved
// through a dispatch table with a generic-container fallback, so an unknown
// kind renders instead of failing.
package markup

import (
	"encoding/json"
	"strings"
)

// FlexString decodes a JSON value that may arrive as a string or a number.
// Client payloads are inconsistent about element IDs ("1" vs 1).
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// Objects, arrays, booleans: not an identifier, treat as absent.
		*f = ""
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

// Position is the top-left offset of an absolutely positioned box, in
// pixels, within the fixed canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is an optional explicit box size in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FormField describes one input of a form element.
type FormField struct {
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Placeholder string   `json:"placeholder"`
	Required    bool     `json:"required"`
	Options     []string `json:"options"`
}

// Item is a labeled, optionally linked entry used by navbars, footers,
// lists, grids, and cards. It decodes from either a bare string or an
// object with label/url (or text/href) keys.
type Item struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// UnmarshalJSON accepts "Home", {"label":"Home","url":"/"}, and the older
// {"text":...,"href":...} shape.
func (it *Item) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		it.Label = s
		return nil
	}

	var obj struct {
		Label string `json:"label"`
		URL   string `json:"url"`
		Text  string `json:"text"`
		Href  string `json:"href"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	it.Label = obj.Label
	if it.Label == "" {
		it.Label = obj.Text
	}
	it.URL = obj.URL
	if it.URL == "" {
		it.URL = obj.Href
	}
	return nil
}

// FooterColumn is a titled group of links in a footer element.
type FooterColumn struct {
	Title string `json:"title"`
	Links []Item `json:"links"`
}

// Element is one positioned, typed, styled unit of a layout — the input
// atom of the compiler. Type-specific fields are populated only for the
// kinds that use them; everything else ignores them.
type Element struct {
	ID         FlexString  `json:"id"`
	Type       string      `json:"type"`
	Label      string      `json:"label"` // older payloads carry the kind here
	Position   Position    `json:"position"`
	Size       *Size       `json:"size,omitempty"`
	Styles     StyleValues `json:"styles"`
	Content    string      `json:"content"`
	CustomText string      `json:"customText"`
	ImageURL   string      `json:"imageUrl"`
	ButtonText string      `json:"buttonText"`

	Fields   []FormField    `json:"fields"`
	Items    []Item         `json:"items"`
	Columns  []FooterColumn `json:"columns"`
	Children []Element      `json:"children"`
}

// StyleValues is the element's raw style bag. A nil map is valid and
// treated as empty.
type StyleValues map[string]any

// Kind returns the dispatch key: the type field, falling back to label,
// lowercased. Empty means the generic container.
func (e *Element) Kind() string {
	kind := e.Type
	if kind == "" {
		kind = e.Label
	}
	return strings.ToLower(strings.TrimSpace(kind))
}

// Text returns the element's display text, preferring customText over
// content.
func (e *Element) Text() string {
	if e.CustomText != "" {
		return e.CustomText
	}
	return e.Content
}
