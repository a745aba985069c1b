// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package docx serializes the rich-text document model into a Word
// (WordprocessingML) file: a zip container of etree-built XML parts.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"pageforge/internal/richtext"
)

const (
	wordNS         = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	relsNS         = "http://schemas.openxmlformats.org/package/2006/relationships"
	contentTypesNS = "http://schemas.openxmlformats.org/package/2006/content-types"

	officeDocumentRel = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	stylesRel         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"

	documentContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	stylesContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	relsContentType     = "application/vnd.openxmlformats-package.relationships+xml"

	// twentiethsPerLine converts a line-spacing multiplier to OOXML
	// twentieths of a point (240 = single spacing).
	twentiethsPerLine = 240

	// titleSpacingAfter is the gap below the document title, in twentieths.
	titleSpacingAfter = 400
)

// ContentType is the MIME type of the produced file, for download headers.
const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Render serializes doc into .docx bytes. The title becomes a centered
// Heading1 paragraph ahead of the body.
func Render(doc *richtext.Document) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name  string
		build func() *etree.Document
	}{
		{name: "[Content_Types].xml", build: contentTypesPart},
		{name: "_rels/.rels", build: packageRelsPart},
		{name: "word/_rels/document.xml.rels", build: documentRelsPart},
		{name: "word/styles.xml", build: stylesPart},
		{name: "word/document.xml", build: func() *etree.Document { return documentPart(doc) }},
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create docx part %s: %w", part.name, err)
		}
		xmlDoc := part.build()
		xmlDoc.Indent(0)
		if _, err := xmlDoc.WriteTo(w); err != nil {
			return nil, fmt.Errorf("write docx part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize docx container: %w", err)
	}
	return buf.Bytes(), nil
}

func contentTypesPart() *etree.Document {
	d := newXMLDoc()
	types := d.CreateElement("Types")
	types.CreateAttr("xmlns", contentTypesNS)

	def := types.CreateElement("Default")
	def.CreateAttr("Extension", "rels")
	def.CreateAttr("ContentType", relsContentType)

	xmlDef := types.CreateElement("Default")
	xmlDef.CreateAttr("Extension", "xml")
	xmlDef.CreateAttr("ContentType", "application/xml")

	docOverride := types.CreateElement("Override")
	docOverride.CreateAttr("PartName", "/word/document.xml")
	docOverride.CreateAttr("ContentType", documentContentType)

	stylesOverride := types.CreateElement("Override")
	stylesOverride.CreateAttr("PartName", "/word/styles.xml")
	stylesOverride.CreateAttr("ContentType", stylesContentType)

	return d
}

func packageRelsPart() *etree.Document {
	d := newXMLDoc()
	rels := d.CreateElement("Relationships")
	rels.CreateAttr("xmlns", relsNS)

	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId1")
	rel.CreateAttr("Type", officeDocumentRel)
	rel.CreateAttr("Target", "word/document.xml")

	return d
}

func documentRelsPart() *etree.Document {
	d := newXMLDoc()
	rels := d.CreateElement("Relationships")
	rels.CreateAttr("xmlns", relsNS)

	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId1")
	rel.CreateAttr("Type", stylesRel)
	rel.CreateAttr("Target", "styles.xml")

	return d
}

// headingSizes are half-point font sizes for Heading1-3 styles.
var headingSizes = [...]int{32, 28, 26}

func stylesPart() *etree.Document {
	d := newXMLDoc()
	root := d.CreateElement("w:styles")
	root.CreateAttr("xmlns:w", wordNS)

	for level := 1; level <= 3; level++ {
		style := root.CreateElement("w:style")
		style.CreateAttr("w:type", "paragraph")
		style.CreateAttr("w:styleId", "Heading"+strconv.Itoa(level))

		name := style.CreateElement("w:name")
		name.CreateAttr("w:val", "heading "+strconv.Itoa(level))

		rPr := style.CreateElement("w:rPr")
		rPr.CreateElement("w:b")
		sz := rPr.CreateElement("w:sz")
		sz.CreateAttr("w:val", strconv.Itoa(headingSizes[level-1]))
	}

	return d
}

func documentPart(doc *richtext.Document) *etree.Document {
	d := newXMLDoc()
	root := d.CreateElement("w:document")
	root.CreateAttr("xmlns:w", wordNS)
	body := root.CreateElement("w:body")

	if doc.Title != "" {
		writeTitle(body, doc.Title)
	}
	for i := range doc.Paragraphs {
		writeParagraph(body, &doc.Paragraphs[i])
	}

	sectPr := body.CreateElement("w:sectPr")
	pgSz := sectPr.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", "11906") // A4 portrait, twentieths of a point
	pgSz.CreateAttr("w:h", "16838")

	return d
}

// writeTitle emits the centered Heading1 title paragraph with extra space
// below it.
func writeTitle(body *etree.Element, title string) {
	p := body.CreateElement("w:p")
	pPr := p.CreateElement("w:pPr")

	pStyle := pPr.CreateElement("w:pStyle")
	pStyle.CreateAttr("w:val", "Heading1")

	jc := pPr.CreateElement("w:jc")
	jc.CreateAttr("w:val", "center")

	spacing := pPr.CreateElement("w:spacing")
	spacing.CreateAttr("w:after", strconv.Itoa(titleSpacingAfter))

	run := p.CreateElement("w:r")
	text := run.CreateElement("w:t")
	text.CreateAttr("xml:space", "preserve")
	text.SetText(title)
}

func writeParagraph(body *etree.Element, para *richtext.Paragraph) {
	p := body.CreateElement("w:p")
	pPr := p.CreateElement("w:pPr")

	if para.HeadingLevel >= 1 && para.HeadingLevel <= 3 {
		pStyle := pPr.CreateElement("w:pStyle")
		pStyle.CreateAttr("w:val", "Heading"+strconv.Itoa(para.HeadingLevel))
	}

	if val := alignmentValue(para.Alignment); val != "" {
		jc := pPr.CreateElement("w:jc")
		jc.CreateAttr("w:val", val)
	}

	if para.LineSpacing > 0 {
		spacing := pPr.CreateElement("w:spacing")
		spacing.CreateAttr("w:line", strconv.Itoa(int(para.LineSpacing*twentiethsPerLine)))
		spacing.CreateAttr("w:lineRule", "auto")
	}

	for _, run := range para.Runs {
		writeRun(p, run)
	}
}

func writeRun(p *etree.Element, run richtext.TextRun) {
	r := p.CreateElement("w:r")

	// A bare newline run is a line break, not text.
	if run.Text == "\n" {
		r.CreateElement("w:br")
		return
	}

	rPr := r.CreateElement("w:rPr")
	if run.FontFamily != "" {
		fonts := rPr.CreateElement("w:rFonts")
		fonts.CreateAttr("w:ascii", run.FontFamily)
		fonts.CreateAttr("w:hAnsi", run.FontFamily)
	}
	if run.SizeHalfPoints > 0 {
		sz := rPr.CreateElement("w:sz")
		sz.CreateAttr("w:val", strconv.Itoa(run.SizeHalfPoints))
		szCs := rPr.CreateElement("w:szCs")
		szCs.CreateAttr("w:val", strconv.Itoa(run.SizeHalfPoints))
	}
	if run.ColorHex != "" {
		color := rPr.CreateElement("w:color")
		color.CreateAttr("w:val", run.ColorHex)
	}
	if run.Bold {
		rPr.CreateElement("w:b")
	}
	if run.Italic {
		rPr.CreateElement("w:i")
	}
	if run.Underline {
		u := rPr.CreateElement("w:u")
		u.CreateAttr("w:val", "single")
	}

	text := r.CreateElement("w:t")
	text.CreateAttr("xml:space", "preserve")
	text.SetText(run.Text)
}

// alignmentValue maps model alignment to the OOXML jc value; left is the
// default and emits nothing.
func alignmentValue(a richtext.Alignment) string {
	switch a {
	case richtext.AlignCenter:
		return "center"
	case richtext.AlignRight:
		return "right"
	case richtext.AlignJustify:
		return "both"
	default:
		return ""
	}
}

func newXMLDoc() *etree.Document {
	d := etree.NewDocument()
	d.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return d
}
