package slugger

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
)

func never(_ context.Context, _ string) (bool, error)  { return false, nil }
func always(_ context.Context, _ string) (bool, error) { return true, nil }

func TestAssignNoCollision(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple title", title: "Hello World", want: "hello-world"},
		{name: "punctuation stripped", title: "Hello, World!", want: "hello-world"},
		{name: "diacritics folded", title: "Crème Brûlée Recipes", want: "creme-brulee-recipes"},
		{name: "empty title", title: "", want: "untitled"},
		{name: "symbols only", title: "!!! ???", want: "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Assign(context.Background(), tt.title, never)
			if err != nil {
				t.Fatalf("Assign: %v", err)
			}
			if got != tt.want {
				t.Errorf("Assign(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

// TestAssignAllCollisions verifies bounded termination: an oracle that
// always reports a collision still yields a non-empty slug.
func TestAssignAllCollisions(t *testing.T) {
	probes := 0
	counting := func(_ context.Context, _ string) (bool, error) {
		probes++
		return true, nil
	}

	got, err := Assign(context.Background(), "Popular Title", counting)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if got == "" {
		t.Fatal("Assign returned empty slug under total collision")
	}
	if probes != maxAttempts {
		t.Errorf("oracle probed %d times, want %d", probes, maxAttempts)
	}
	if !strings.HasPrefix(got, "popular-title-") {
		t.Errorf("collided slug %q does not carry the base plus suffix", got)
	}
}

// TestAssignSingleCollision checks the suffixed retry shape.
func TestAssignSingleCollision(t *testing.T) {
	suffixed := regexp.MustCompile(`^taken-[0-9a-z]{4}$`)
	oracle := func(_ context.Context, candidate string) (bool, error) {
		return candidate == "taken", nil
	}

	got, err := Assign(context.Background(), "Taken", oracle)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if !suffixed.MatchString(got) {
		t.Errorf("slug after one collision = %q, want taken-XXXX", got)
	}
}

func TestAssignOracleError(t *testing.T) {
	boom := errors.New("connection refused")
	oracle := func(_ context.Context, _ string) (bool, error) { return false, boom }

	_, err := Assign(context.Background(), "Anything", oracle)
	if !errors.Is(err, boom) {
		t.Errorf("Assign error = %v, want wrapped %v", err, boom)
	}
}

// TestAssignSuffixedLengthCap checks that the suffixed retry path still
// honors the length cap when the base slug is already at it.
func TestAssignSuffixedLengthCap(t *testing.T) {
	long := strings.Repeat("word ", 60)
	base := Make(long)
	oracle := func(_ context.Context, candidate string) (bool, error) {
		return candidate == base, nil
	}

	got, err := Assign(context.Background(), long, oracle)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if len(got) > 100 {
		t.Errorf("suffixed slug is %d chars, want ≤ 100: %q", len(got), got)
	}
	if suffixed := regexp.MustCompile(`-[0-9a-z]{4}$`); !suffixed.MatchString(got) {
		t.Errorf("slug after collision = %q, want random suffix", got)
	}
}

func TestMakeTruncation(t *testing.T) {
	long := strings.Repeat("word ", 60)
	got := Make(long)
	if len(got) > 100 {
		t.Errorf("Make produced %d chars, want ≤ 100", len(got))
	}
	if strings.HasSuffix(got, "-") || strings.HasPrefix(got, "-") {
		t.Errorf("truncated slug has dangling hyphen: %q", got)
	}
}

func TestMakeURLSafe(t *testing.T) {
	safe := regexp.MustCompile(`^[a-z0-9-]+$`)
	inputs := []string{"Hello World", "ünïcòdé", "tabs\tand\nnewlines", "100% Legit!", ""}
	for _, in := range inputs {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			if got := Make(in); !safe.MatchString(got) {
				t.Errorf("Make(%q) = %q, not URL-safe", in, got)
			}
		})
	}
}
