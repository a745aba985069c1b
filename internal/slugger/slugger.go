// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slugger assigns unique URL-safe slugs derived from titles. It
// probes a caller-supplied uniqueness oracle and retries with a randomized
// suffix a bounded number of times.
package slugger

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/gosimple/slug"
)

const (
	// maxLength truncates slugs to keep URLs and filenames manageable.
	maxLength = 100

	// maxAttempts bounds the collision retry loop. Exhausting it is
	// astronomically unlikely at expected scale; the last candidate is
	// returned rather than looping further.
	maxAttempts = 5

	suffixLength = 4
)

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ExistsFunc reports whether a slug is already taken.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Assign derives a slug from title and guarantees it does not collide with
// an existing one, within a bounded number of probes. With no collisions the
// result is the pure slugification of the title. The returned slug is never
// empty: a title with no usable characters becomes "untitled".
func Assign(ctx context.Context, title string, exists ExistsFunc) (string, error) {
	base := Make(title)

	candidate := base
	for attempt := 0; attempt < maxAttempts; attempt++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("slug uniqueness probe: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		// Suffixed candidates must still honor the length cap.
		stem := base
		if len(stem) > maxLength-suffixLength-1 {
			stem = strings.Trim(stem[:maxLength-suffixLength-1], "-")
		}
		candidate = stem + "-" + randomSuffix()
	}

	return candidate, nil
}

// Make is the pure slugification step: lowercase, diacritics stripped,
// punctuation removed, whitespace runs collapsed to hyphens, truncated to
// maxLength.
func Make(title string) string {
	s := slug.Make(title)
	if len(s) > maxLength {
		s = strings.Trim(s[:maxLength], "-")
	}
	if s == "" {
		s = "untitled"
	}
	return s
}

func randomSuffix() string {
	b := make([]byte, suffixLength)
	for i := range b {
		b[i] = suffixAlphabet[rand.IntN(len(suffixAlphabet))]
	}
	return string(b)
}
