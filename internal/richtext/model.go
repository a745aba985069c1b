// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package richtext compiles a bounded HTML subset into an abstract document
// model of styled text runs grouped into paragraphs. The model is
// independent of any binary format; internal/docx and internal/pdfout
// serialize it.
package richtext

// Alignment is the block-level text alignment of a paragraph.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// TextRun is the smallest styled unit of text. Fields mirror what a
// word-processing run can carry.
type TextRun struct {
	Text           string
	FontFamily     string
	SizeHalfPoints int
	ColorHex       string // 6-digit uppercase hex, no '#'
	Bold           bool
	Italic         bool
	Underline      bool
}

// Paragraph is an ordered group of runs sharing block-level formatting.
// HeadingLevel is 0 for body text, 1-3 for h1-h3.
type Paragraph struct {
	Runs         []TextRun
	Alignment    Alignment
	HeadingLevel int
	LineSpacing  float64
}

// Document is the compiled article: a title plus its paragraphs. Encoders
// render the title as a centered level-1 heading ahead of the body.
type Document struct {
	Title      string
	Paragraphs []Paragraph
}
