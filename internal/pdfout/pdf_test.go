package pdfout

import (
	"bytes"
	"testing"

	"pageforge/internal/richtext"
)

func TestRenderProducesPDF(t *testing.T) {
	doc := &richtext.Document{
		Title: "Quarterly Notes",
		Paragraphs: []richtext.Paragraph{
			{
				Alignment: richtext.AlignCenter,
				Runs: []richtext.TextRun{
					{Text: "Bold lead", Bold: true, SizeHalfPoints: 24, ColorHex: "FF0000"},
					{Text: "plain tail", SizeHalfPoints: 24, ColorHex: "000000"},
				},
			},
			{
				HeadingLevel: 2,
				Runs:         []richtext.TextRun{{Text: "Details", SizeHalfPoints: 28}},
			},
			{
				Runs: []richtext.TextRun{
					{Text: "line one"},
					{Text: "\n"},
					{Text: "line two", Italic: true, Underline: true},
				},
			},
		},
	}

	data, err := Render(doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with PDF magic, got %q", data[:min(8, len(data))])
	}
	if len(data) < 500 {
		t.Errorf("output suspiciously small: %d bytes", len(data))
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	data, err := Render(&richtext.Document{})
	if err != nil {
		t.Fatalf("Render empty: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("empty document did not render a valid PDF")
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{hex: "FF0000", r: 255, g: 0, b: 0},
		{hex: "0080FF", r: 0, g: 128, b: 255},
		{hex: "", r: 0, g: 0, b: 0},
		{hex: "nothex", r: 0, g: 0, b: 0},
		{hex: "12345", r: 0, g: 0, b: 0},
	}
	for _, tt := range tests {
		r, g, b := hexToRGB(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hexToRGB(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
