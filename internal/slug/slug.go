// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives and checks the URL keys used by initiatives.
package slug

import (
	"regexp"
	"strings"
)

// Pattern is the shape the backend accepts for an initiative slug.
const Pattern = `^[a-z0-9-]+$`

var (
	valid = regexp.MustCompile(Pattern)

	// disallowed drops everything a slug may not carry once spaces are
	// turned into hyphens.
	disallowed = regexp.MustCompile(`[^a-z0-9-]`)

	whitespace      = regexp.MustCompile(`\s+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate suggests a slug from an English title.
// Example: "Clean Water Drive 2026!" → "clean-water-drive-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = whitespace.ReplaceAllString(result, "-")
	result = disallowed.ReplaceAllString(result, "")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Valid reports whether s is an acceptable slug.
func Valid(s string) bool {
	return valid.MatchString(s)
}
