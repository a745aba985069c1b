package styles

import (
	"regexp"
	"testing"
)

var hexOutput = regexp.MustCompile(`^[0-9A-F]{6}$`)

// TestNormalizeColor covers every accepted input form plus degradation to
// the default on garbage.
func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Hex forms ---
		{name: "six digit with hash", input: "#FF0000", want: "FF0000"},
		{name: "six digit without hash", input: "ff0000", want: "FF0000"},
		{name: "three digit with hash", input: "#fff", want: "FFFFFF"},
		{name: "three digit mixed case", input: "#aB3", want: "AABB33"},
		{name: "surrounding whitespace", input: "  #1a2b3c  ", want: "1A2B3C"},

		// --- Functional notation ---
		{name: "rgb", input: "rgb(255, 0, 0)", want: "FF0000"},
		{name: "rgb no spaces", input: "rgb(16,32,48)", want: "102030"},
		{name: "rgba alpha ignored", input: "rgba(0, 128, 255, 0.5)", want: "0080FF"},
		{name: "rgb components clamped high", input: "rgb(300, 999, 256)", want: "FFFFFF"},
		{name: "rgb components clamped low", input: "rgb(-10, 0, 5)", want: "000005"},

		// --- Named palette ---
		{name: "named red", input: "red", want: "FF0000"},
		{name: "named white uppercase", input: "WHITE", want: "FFFFFF"},
		{name: "named navy", input: "navy", want: "000080"},
		{name: "grey and gray agree", input: "grey", want: "808080"},

		// --- Degradation ---
		{name: "empty string", input: "", want: "000000"},
		{name: "unknown name", input: "blurple", want: "000000"},
		{name: "malformed hex", input: "#12345", want: "000000"},
		{name: "garbage", input: "!!!", want: "000000"},
		{name: "css variable", input: "var(--accent)", want: "000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeColor(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeColor(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !hexOutput.MatchString(got) {
				t.Errorf("NormalizeColor(%q) = %q, not a 6-digit uppercase hex", tt.input, got)
			}
		})
	}
}

// TestNormalizeColorIdempotent verifies that normalizing an already
// normalized value is a no-op for a spread of inputs.
func TestNormalizeColorIdempotent(t *testing.T) {
	inputs := []string{"#fff", "red", "rgb(1,2,3)", "nonsense", "", "#A1B2C3", "rgba(300,-1,128,1)"}
	for _, in := range inputs {
		once := NormalizeColor(in)
		twice := NormalizeColor(once)
		if once != twice {
			t.Errorf("NormalizeColor not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalizeFontSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback int
		want     int
	}{
		{name: "plain pixels", input: "16px", fallback: 22, want: 32},
		{name: "bare number", input: "12", fallback: 22, want: 24},
		{name: "decimal", input: "10.5px", fallback: 22, want: 21},
		{name: "clamped low", input: "2px", fallback: 22, want: 16},
		{name: "clamped high", input: "500px", fallback: 22, want: 144},
		{name: "negative clamped low", input: "-4", fallback: 22, want: 16},
		{name: "non numeric falls back", input: "large", fallback: 22, want: 22},
		{name: "empty falls back", input: "", fallback: 28, want: 28},
		{name: "point units", input: "14pt", fallback: 22, want: 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeFontSize(tt.input, tt.fallback)
			if got != tt.want {
				t.Errorf("NormalizeFontSize(%q, %d) = %d, want %d", tt.input, tt.fallback, got, tt.want)
			}
			if got != tt.fallback && (got < minFontPoints*2 || got > maxFontPoints*2) {
				t.Errorf("NormalizeFontSize(%q, %d) = %d, outside clamp range", tt.input, tt.fallback, got)
			}
		})
	}
}

func TestNormalizeLineHeight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "in range", input: "1.8", want: 1.8},
		{name: "clamped low", input: "0.2", want: 1.0},
		{name: "clamped high", input: "12", want: 3.0},
		{name: "negative", input: "-1", want: 1.0},
		{name: "non numeric defaults", input: "normal", want: 1.5},
		{name: "empty defaults", input: "", want: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLineHeight(tt.input); got != tt.want {
				t.Errorf("NormalizeLineHeight(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInlineStyle(t *testing.T) {
	decls := ParseInlineStyle("Color: red; font-size: 14px ;; bogus ; text-align:center")

	want := map[string]string{
		"color":      "red",
		"font-size":  "14px",
		"text-align": "center",
	}
	if len(decls) != len(want) {
		t.Fatalf("ParseInlineStyle returned %d declarations, want %d: %v", len(decls), len(want), decls)
	}
	for k, v := range want {
		if decls[k] != v {
			t.Errorf("ParseInlineStyle[%q] = %q, want %q", k, decls[k], v)
		}
	}
}

func TestCleanFontFamily(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: `"Times New Roman", serif`, want: "Times New Roman"},
		{input: "'Courier New'", want: "Courier New"},
		{input: "Arial", want: "Arial"},
		{input: " Georgia , serif ", want: "Georgia"},
	}
	for _, tt := range tests {
		if got := CleanFontFamily(tt.input); got != tt.want {
			t.Errorf("CleanFontFamily(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStyleMapString(t *testing.T) {
	m := StyleMap{"fontSize": 16.0, "color": "#fff", "zIndex": 3.5, "hidden": true}

	tests := []struct {
		key  string
		want string
	}{
		{key: "fontSize", want: "16"},
		{key: "color", want: "#fff"},
		{key: "zIndex", want: "3.5"},
		{key: "hidden", want: "true"},
		{key: "missing", want: ""},
	}
	for _, tt := range tests {
		if got := m.String(tt.key); got != tt.want {
			t.Errorf("StyleMap.String(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
