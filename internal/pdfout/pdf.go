// Package pdfout renders the rich-text document model as a PDF using gofpdf.
// Formatting is approximated at paragraph granularity: headings get larger
// bold type, runs keep their own style and color within flowed text.
package pdfout

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"pageforge/internal/richtext"
)

// ContentType is the MIME type of the produced file, for download headers.
const ContentType = "application/pdf"

const (
	pageMargin  = 15.0
	titleSize   = 18.0
	bodyLineHt  = 6.0
	titleLineHt = 9.0
)

// headingSizes maps heading level (1-3) to point sizes.
var headingSizes = map[int]float64{1: 16, 2: 14, 3: 12}

// Render converts doc into PDF bytes. The title renders centered and bold
// ahead of the body, mirroring the docx encoder.
func Render(doc *richtext.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	// Core fonts are Latin-1; translate what we can, drop what we can't.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if doc.Title != "" {
		pdf.SetFont("Helvetica", "B", titleSize)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, titleLineHt, tr(doc.Title), "", "C", false)
		pdf.Ln(4)
	}

	for _, para := range doc.Paragraphs {
		renderParagraph(pdf, tr, &para)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func renderParagraph(pdf *gofpdf.Fpdf, tr func(string) string, para *richtext.Paragraph) {
	align := alignString(para.Alignment)
	lineHt := bodyLineHt
	if para.LineSpacing > 1 {
		lineHt = bodyLineHt * para.LineSpacing / 1.5
	}

	if para.HeadingLevel >= 1 && para.HeadingLevel <= 3 {
		pdf.SetFont("Helvetica", "B", headingSizes[para.HeadingLevel])
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, lineHt+2, tr(paragraphText(para)), "", align, false)
		pdf.Ln(2)
		return
	}

	// Left-aligned body text flows run by run so each run keeps its own
	// style; other alignments fall back to uniform first-run styling since
	// gofpdf's Write cannot align.
	if align == "L" {
		for _, run := range para.Runs {
			applyRunStyle(pdf, run)
			if run.Text == "\n" {
				pdf.Ln(lineHt)
				continue
			}
			pdf.Write(lineHt, tr(run.Text)+" ")
		}
		pdf.Ln(lineHt)
		pdf.Ln(2)
		return
	}

	if len(para.Runs) > 0 {
		applyRunStyle(pdf, para.Runs[0])
	}
	pdf.MultiCell(0, lineHt, tr(paragraphText(para)), "", align, false)
	pdf.Ln(2)
}

func applyRunStyle(pdf *gofpdf.Fpdf, run richtext.TextRun) {
	style := ""
	if run.Bold {
		style += "B"
	}
	if run.Italic {
		style += "I"
	}
	if run.Underline {
		style += "U"
	}

	size := float64(run.SizeHalfPoints) / 2
	if size <= 0 {
		size = 11
	}
	pdf.SetFont("Helvetica", style, size)

	r, g, b := hexToRGB(run.ColorHex)
	pdf.SetTextColor(r, g, b)
}

func paragraphText(para *richtext.Paragraph) string {
	var b strings.Builder
	for i, run := range para.Runs {
		if run.Text == "\n" {
			b.WriteString("\n")
			continue
		}
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(run.Text)
	}
	return b.String()
}

func alignString(a richtext.Alignment) string {
	switch a {
	case richtext.AlignCenter:
		return "C"
	case richtext.AlignRight:
		return "R"
	case richtext.AlignJustify:
		return "J"
	default:
		return "L"
	}
}

// hexToRGB splits a 6-digit hex color into components. Malformed input
// renders black.
func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 6 {
		return 0, 0, 0
	}
	r, err1 := strconv.ParseInt(hex[0:2], 16, 32)
	g, err2 := strconv.ParseInt(hex[2:4], 16, 32)
	b, err3 := strconv.ParseInt(hex[4:6], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}
	return int(r), int(g), int(b)
}
