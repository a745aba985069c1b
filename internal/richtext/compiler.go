// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package richtext

import (
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"pageforge/internal/styles"
)

// fallbackText is emitted when the input produces no paragraphs at all, so
// callers never receive an empty document body.
const fallbackText = "No content"

// errorText replaces the document body when parsing fails outright.
const errorText = "[formatting error: content could not be rendered]"

var whitespaceRun = regexp.MustCompile(`\s+`)

// resolvedStyle is the effective inline style at a point in the node tree.
// Values are always concrete; children receive a copy and merge their own
// overrides on top, so no style state is ever mutated in place.
type resolvedStyle struct {
	fontFamily     string
	sizeHalfPoints int
	colorHex       string
	bold           bool
	italic         bool
	underline      bool
}

// Compiler turns sanitized HTML into the paragraph/run document model.
type Compiler struct {
	defaults styles.Defaults
}

// NewCompiler creates a Compiler with the given styling defaults.
func NewCompiler(defaults styles.Defaults) *Compiler {
	return &Compiler{defaults: defaults}
}

// Compile parses htmlSrc and returns its paragraphs, honoring inherited
// formatting down the node tree. base supplies document-wide overrides for
// font family, font size, color, and line height. Compile is total: any
// input, including non-HTML garbage, yields at least one paragraph.
func (c *Compiler) Compile(htmlSrc string, base styles.StyleMap) (paragraphs []Paragraph) {
	lineSpacing := c.defaults.LineHeight
	if base != nil {
		lineSpacing = styles.NormalizeLineHeight(base.String("lineHeight"))
	}

	// The parser and tree walk must never take the whole request down; a
	// failure degrades to a visible error paragraph instead.
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("rich text compile panic", "error", rec)
			paragraphs = []Paragraph{c.errorParagraph(lineSpacing)}
		}
	}()

	root, err := html.Parse(strings.NewReader(htmlSrc))
	if err != nil {
		slog.Warn("rich text parse failed", "error", err)
		return []Paragraph{c.errorParagraph(lineSpacing)}
	}

	baseStyle := c.baseStyle(base)

	body := findBody(root)
	for node := body.FirstChild; node != nil; node = node.NextSibling {
		p, ok := c.compileBlock(node, baseStyle, lineSpacing)
		if ok {
			paragraphs = append(paragraphs, p)
		}
	}

	if len(paragraphs) == 0 {
		paragraphs = []Paragraph{{
			Runs:        []TextRun{c.run(fallbackText, baseStyle)},
			Alignment:   AlignLeft,
			LineSpacing: lineSpacing,
		}}
	}
	return paragraphs
}

// baseStyle resolves the document-wide starting style from the request's
// style map merged over the compiler defaults.
func (c *Compiler) baseStyle(base styles.StyleMap) resolvedStyle {
	rs := resolvedStyle{
		fontFamily:     c.defaults.FontFamily,
		sizeHalfPoints: c.defaults.SizeHalfPoints,
		colorHex:       c.defaults.ColorHex,
	}
	if base == nil {
		return rs
	}
	if ff := base.String("fontFamily"); ff != "" {
		rs.fontFamily = styles.CleanFontFamily(ff)
	}
	if fs := base.String("fontSize"); fs != "" {
		rs.sizeHalfPoints = styles.NormalizeFontSize(fs, c.defaults.SizeHalfPoints)
	}
	if col := base.String("color"); col != "" {
		rs.colorHex = styles.NormalizeColor(col)
	}
	return rs
}

// compileBlock turns one top-level node into a paragraph. A bare text node
// becomes a one-run paragraph with the base style; a block element carries
// alignment and heading level and its descendants become runs.
func (c *Compiler) compileBlock(node *html.Node, base resolvedStyle, lineSpacing float64) (Paragraph, bool) {
	p := Paragraph{Alignment: AlignLeft, LineSpacing: lineSpacing}

	switch node.Type {
	case html.TextNode:
		r, ok := c.textRun(node.Data, base)
		if !ok {
			return Paragraph{}, false
		}
		p.Runs = []TextRun{r}
		return p, true

	case html.ElementNode:
		decls := styles.ParseInlineStyle(attr(node, "style"))
		switch decls["text-align"] {
		case "center":
			p.Alignment = AlignCenter
		case "right":
			p.Alignment = AlignRight
		case "justify":
			p.Alignment = AlignJustify
		}

		switch node.DataAtom {
		case atom.H1:
			p.HeadingLevel = 1
		case atom.H2:
			p.HeadingLevel = 2
		case atom.H3:
			p.HeadingLevel = 3
		}

		p.Runs = c.collectRuns(node, base)
		if len(p.Runs) == 0 {
			return Paragraph{}, false
		}
		return p, true
	}

	return Paragraph{}, false
}

// collectRuns walks node's subtree, threading the resolved style down and
// emitting one run per terminal text node.
func (c *Compiler) collectRuns(node *html.Node, parent resolvedStyle) []TextRun {
	switch node.Type {
	case html.TextNode:
		if r, ok := c.textRun(node.Data, parent); ok {
			return []TextRun{r}
		}
		return nil

	case html.ElementNode:
		// Script and style bodies are text nodes too, but never content.
		if node.DataAtom == atom.Script || node.DataAtom == atom.Style {
			return nil
		}
		if node.DataAtom == atom.Br {
			return []TextRun{{Text: "\n"}}
		}

		current := c.mergeNodeStyle(node, parent)

		var runs []TextRun
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			runs = append(runs, c.collectRuns(child, current)...)
		}
		return runs
	}

	return nil
}

// mergeNodeStyle copies the parent's resolved style and applies the node's
// own overrides: inline declarations first, then tag semantics.
func (c *Compiler) mergeNodeStyle(node *html.Node, parent resolvedStyle) resolvedStyle {
	current := parent
	decls := styles.ParseInlineStyle(attr(node, "style"))

	if v, ok := decls["color"]; ok {
		current.colorHex = styles.NormalizeColor(v)
	}
	if v, ok := decls["font-family"]; ok {
		current.fontFamily = styles.CleanFontFamily(v)
	}
	if v, ok := decls["font-size"]; ok {
		current.sizeHalfPoints = styles.NormalizeFontSize(v, c.defaults.SizeHalfPoints)
	}
	if strings.Contains(decls["font-weight"], "bold") {
		current.bold = true
	}
	if strings.Contains(decls["font-style"], "italic") {
		current.italic = true
	}
	if strings.Contains(decls["text-decoration"], "underline") {
		current.underline = true
	}

	switch node.DataAtom {
	case atom.B, atom.Strong:
		current.bold = true
	case atom.I, atom.Em:
		current.italic = true
	case atom.U:
		current.underline = true
	}

	return current
}

// textRun collapses whitespace in raw text and builds a run with the given
// style. Returns false when the text collapses to nothing.
func (c *Compiler) textRun(raw string, rs resolvedStyle) (TextRun, bool) {
	text := strings.TrimSpace(whitespaceRun.ReplaceAllString(raw, " "))
	if text == "" {
		return TextRun{}, false
	}
	return c.run(text, rs), true
}

func (c *Compiler) run(text string, rs resolvedStyle) TextRun {
	return TextRun{
		Text:           text,
		FontFamily:     rs.fontFamily,
		SizeHalfPoints: rs.sizeHalfPoints,
		ColorHex:       rs.colorHex,
		Bold:           rs.bold,
		Italic:         rs.italic,
		Underline:      rs.underline,
	}
}

// errorParagraph is the visible marker for an unrenderable body.
func (c *Compiler) errorParagraph(lineSpacing float64) Paragraph {
	return Paragraph{
		Runs: []TextRun{{
			Text:           errorText,
			FontFamily:     c.defaults.FontFamily,
			SizeHalfPoints: c.defaults.SizeHalfPoints,
			ColorHex:       "FF0000",
		}},
		Alignment:   AlignLeft,
		LineSpacing: lineSpacing,
	}
}

// findBody locates the <body> element the parser always produces. If the
// tree is somehow bodyless the root itself is walked.
func findBody(root *html.Node) *html.Node {
	var body *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	if body == nil {
		return root
	}
	return body
}

func attr(node *html.Node, name string) string {
	for _, a := range node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
