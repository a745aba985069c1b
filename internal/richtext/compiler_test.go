package richtext

import (
	"strings"
	"testing"

	"pageforge/internal/styles"
)

func newTestCompiler() *Compiler {
	return NewCompiler(styles.Standard())
}

// TestCompileCenteredBoldParagraph covers the canonical two-run case: a
// centered paragraph with a bold run followed by a plain run.
func TestCompileCenteredBoldParagraph(t *testing.T) {
	c := newTestCompiler()
	paragraphs := c.Compile("<p style='text-align:center'><b>Bold</b> plain</p>", nil)

	if len(paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(paragraphs))
	}
	p := paragraphs[0]
	if p.Alignment != AlignCenter {
		t.Errorf("alignment = %q, want %q", p.Alignment, AlignCenter)
	}
	if len(p.Runs) != 2 {
		t.Fatalf("got %d runs, want 2: %+v", len(p.Runs), p.Runs)
	}
	if p.Runs[0].Text != "Bold" || !p.Runs[0].Bold {
		t.Errorf("first run = %+v, want bold %q", p.Runs[0], "Bold")
	}
	if p.Runs[1].Text != "plain" || p.Runs[1].Bold {
		t.Errorf("second run = %+v, want non-bold %q", p.Runs[1], "plain")
	}
}

// TestCompileStyleInheritance verifies that a child's inline color override
// wins while siblings inherit the parent's resolved color.
func TestCompileStyleInheritance(t *testing.T) {
	c := newTestCompiler()
	paragraphs := c.Compile(`<p style="color:blue"><span style="color:red">hot</span> cold</p>`, nil)

	if len(paragraphs) != 1 || len(paragraphs[0].Runs) != 2 {
		t.Fatalf("unexpected shape: %+v", paragraphs)
	}
	runs := paragraphs[0].Runs
	if runs[0].ColorHex != "FF0000" {
		t.Errorf("child run color = %s, want FF0000", runs[0].ColorHex)
	}
	if runs[1].ColorHex != "0000FF" {
		t.Errorf("inherited run color = %s, want 0000FF", runs[1].ColorHex)
	}
}

func TestCompileHeadings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		level int
	}{
		{name: "h1", input: "<h1>Top</h1>", level: 1},
		{name: "h2", input: "<h2>Mid</h2>", level: 2},
		{name: "h3", input: "<h3>Low</h3>", level: 3},
		{name: "paragraph has no level", input: "<p>Body</p>", level: 0},
	}

	c := newTestCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paragraphs := c.Compile(tt.input, nil)
			if len(paragraphs) != 1 {
				t.Fatalf("got %d paragraphs, want 1", len(paragraphs))
			}
			if paragraphs[0].HeadingLevel != tt.level {
				t.Errorf("heading level = %d, want %d", paragraphs[0].HeadingLevel, tt.level)
			}
		})
	}
}

// TestCompileNestedFormatting checks that bold, italic, and underline
// accumulate down the tree rather than replacing each other.
func TestCompileNestedFormatting(t *testing.T) {
	c := newTestCompiler()
	paragraphs := c.Compile("<p><b><i><u>all three</u></i></b></p>", nil)

	if len(paragraphs) != 1 || len(paragraphs[0].Runs) != 1 {
		t.Fatalf("unexpected shape: %+v", paragraphs)
	}
	r := paragraphs[0].Runs[0]
	if !r.Bold || !r.Italic || !r.Underline {
		t.Errorf("run = %+v, want bold+italic+underline", r)
	}
}

func TestCompileInlineFormattingDeclarations(t *testing.T) {
	c := newTestCompiler()
	src := `<p><span style="font-weight:bold; font-style:italic; text-decoration:underline">styled</span></p>`
	paragraphs := c.Compile(src, nil)

	r := paragraphs[0].Runs[0]
	if !r.Bold || !r.Italic || !r.Underline {
		t.Errorf("inline declarations not honored: %+v", r)
	}
}

func TestCompileLineBreak(t *testing.T) {
	c := newTestCompiler()
	paragraphs := c.Compile("<p>one<br>two</p>", nil)

	if len(paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(paragraphs))
	}
	runs := paragraphs[0].Runs
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3: %+v", len(runs), runs)
	}
	if runs[1].Text != "\n" {
		t.Errorf("middle run = %q, want newline", runs[1].Text)
	}
}

func TestCompileBaseStyles(t *testing.T) {
	c := newTestCompiler()
	base := styles.StyleMap{
		"fontFamily": "Georgia, serif",
		"fontSize":   "14px",
		"color":      "teal",
		"lineHeight": "2.5",
	}
	paragraphs := c.Compile("<p>styled body</p>", base)

	p := paragraphs[0]
	if p.LineSpacing != 2.5 {
		t.Errorf("line spacing = %v, want 2.5", p.LineSpacing)
	}
	r := p.Runs[0]
	if r.FontFamily != "Georgia" {
		t.Errorf("font family = %q, want Georgia", r.FontFamily)
	}
	if r.SizeHalfPoints != 28 {
		t.Errorf("size = %d half-points, want 28", r.SizeHalfPoints)
	}
	if r.ColorHex != "008080" {
		t.Errorf("color = %s, want 008080", r.ColorHex)
	}
}

// TestCompileNeverEmpty feeds increasingly hostile input and requires a
// non-empty paragraph slice every time.
func TestCompileNeverEmpty(t *testing.T) {
	inputs := []struct {
		name string
		src  string
	}{
		{name: "empty string", src: ""},
		{name: "whitespace only", src: "   \n\t  "},
		{name: "bare text", src: "just some text"},
		{name: "unclosed tags", src: "<p><b>never closed"},
		{name: "not html at all", src: "{\"json\": true}"},
		{name: "only empty elements", src: "<p></p><div>   </div>"},
		{name: "deeply nested", src: strings.Repeat("<span>", 200) + "deep" + strings.Repeat("</span>", 200)},
		{name: "script only", src: "<script>alert(1)</script>"},
	}

	c := newTestCompiler()
	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			paragraphs := c.Compile(tt.src, nil)
			if len(paragraphs) == 0 {
				t.Fatal("Compile returned zero paragraphs")
			}
			for _, p := range paragraphs {
				if len(p.Runs) == 0 {
					t.Errorf("paragraph with zero runs: %+v", p)
				}
			}
		})
	}
}

// TestCompileEmptyInputFallbackText pins the exact placeholder body emitted
// for empty input, since the docx filename-only download depends on it.
func TestCompileEmptyInputFallbackText(t *testing.T) {
	c := newTestCompiler()
	paragraphs := c.Compile("", nil)

	if len(paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(paragraphs))
	}
	if got := paragraphs[0].Runs[0].Text; got != "No content" {
		t.Errorf("fallback text = %q, want %q", got, "No content")
	}
}

func TestCompileWhitespaceCollapsing(t *testing.T) {
	c := newTestCompiler()
	paragraphs := c.Compile("<p>  several\n\t  words   spread \n out  </p>", nil)

	if got := paragraphs[0].Runs[0].Text; got != "several words spread out" {
		t.Errorf("collapsed text = %q", got)
	}
}

func TestCompileMultipleBlocks(t *testing.T) {
	c := newTestCompiler()
	paragraphs := c.Compile("<h1>Title</h1><p>first</p>loose text<div>second</div>", nil)

	if len(paragraphs) != 4 {
		t.Fatalf("got %d paragraphs, want 4: %+v", len(paragraphs), paragraphs)
	}
	if paragraphs[0].HeadingLevel != 1 {
		t.Errorf("first block heading level = %d, want 1", paragraphs[0].HeadingLevel)
	}
	if paragraphs[2].Runs[0].Text != "loose text" {
		t.Errorf("bare text block = %q, want %q", paragraphs[2].Runs[0].Text, "loose text")
	}
}
