// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package styles canonicalizes presentational values (colors, font sizes,
// line heights) coming from untrusted client payloads. Every function here
// is total: malformed input degrades to a documented default, never an error.
package styles

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// StyleMap is the generic key-value bag of presentational properties
// attached to a layout element or passed as article base styling. Values
// are either numbers (pixels unless the key is dimensionless) or
// pre-formatted strings such as "10px" or "#fff".
type StyleMap map[string]any

// Defaults holds the fallback text styling applied when the input provides
// none. Both compilers receive one Defaults value instead of redefining
// literals per call site.
type Defaults struct {
	FontFamily     string
	SizeHalfPoints int
	ColorHex       string
	LineHeight     float64
}

// Standard returns the service-wide styling defaults.
func Standard() Defaults {
	return Defaults{
		FontFamily:     "Calibri",
		SizeHalfPoints: 22,
		ColorHex:       DefaultColor,
		LineHeight:     1.5,
	}
}

const (
	// DefaultColor is the normalized form every unrecognized color resolves to.
	DefaultColor = "000000"

	minFontPoints = 8
	maxFontPoints = 72

	minLineHeight     = 1.0
	maxLineHeight     = 3.0
	defaultLineHeight = 1.5
)

var (
	hexPattern = regexp.MustCompile(`^#?([0-9a-f]{3}|[0-9a-f]{6})$`)
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)`)
)

// namedColors maps the palette of color names the editor exposes to their
// canonical hex values.
var namedColors = map[string]string{
	"black":   "000000",
	"white":   "FFFFFF",
	"red":     "FF0000",
	"green":   "008000",
	"blue":    "0000FF",
	"yellow":  "FFFF00",
	"orange":  "FFA500",
	"purple":  "800080",
	"gray":    "808080",
	"grey":    "808080",
	"silver":  "C0C0C0",
	"maroon":  "800000",
	"navy":    "000080",
	"teal":    "008080",
	"olive":   "808000",
	"cyan":    "00FFFF",
	"magenta": "FF00FF",
}

// NormalizeColor converts a color value into an uppercase 6-digit hex string
// without a leading '#'. It accepts 3- or 6-digit hex (with or without '#'),
// rgb()/rgba() functional notation, and the named palette. Anything else,
// including the empty string, resolves to DefaultColor. RGB components are
// clamped to [0,255].
func NormalizeColor(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return DefaultColor
	}

	if m := hexPattern.FindStringSubmatch(s); m != nil {
		hex := m[1]
		if len(hex) == 3 {
			var b strings.Builder
			for _, c := range hex {
				b.WriteRune(c)
				b.WriteRune(c)
			}
			hex = b.String()
		}
		return strings.ToUpper(hex)
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		var b strings.Builder
		for _, part := range m[1:4] {
			n, _ := strconv.Atoi(part)
			fmt.Fprintf(&b, "%02X", clampInt(n, 0, 255))
		}
		return b.String()
	}

	if hex, ok := namedColors[s]; ok {
		return hex
	}

	return DefaultColor
}

// NormalizeFontSize parses a pixel (or point) size such as "16px", "14pt",
// or "18" and returns the value in half-point units, clamped to the
// [8,72] point range. Non-numeric input returns fallbackHalfPoints.
func NormalizeFontSize(input string, fallbackHalfPoints int) int {
	v, ok := leadingNumber(input)
	if !ok {
		return fallbackHalfPoints
	}
	if v < minFontPoints {
		v = minFontPoints
	}
	if v > maxFontPoints {
		v = maxFontPoints
	}
	return int(v * 2)
}

// NormalizeLineHeight parses a line-height multiplier, clamped to [1.0,3.0].
// Non-numeric input returns the 1.5 default.
func NormalizeLineHeight(input string) float64 {
	v, ok := leadingNumber(input)
	if !ok {
		return defaultLineHeight
	}
	if v < minLineHeight {
		return minLineHeight
	}
	if v > maxLineHeight {
		return maxLineHeight
	}
	return v
}

// ParseInlineStyle splits an inline style attribute ("color: red; font-size:
// 14px") into a map of lowercased property names to trimmed values. Empty
// or malformed declarations are skipped.
func ParseInlineStyle(style string) map[string]string {
	decls := make(map[string]string)
	for _, part := range strings.Split(style, ";") {
		key, value, found := strings.Cut(part, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		decls[key] = value
	}
	return decls
}

// CleanFontFamily extracts the first family from a CSS font-family value,
// stripping quotes: `"Times New Roman", serif` → `Times New Roman`.
func CleanFontFamily(value string) string {
	first, _, _ := strings.Cut(value, ",")
	first = strings.Trim(strings.TrimSpace(first), `'"`)
	return first
}

// leadingNumber parses the numeric prefix of a string ("16px" → 16).
func leadingNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9') {
			i++
			continue
		}
		break
	}
	if i == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// String returns the style value for key as a string, converting numeric
// JSON values. Returns "" when the key is absent.
func (m StyleMap) String(key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
