// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package i18n holds the site's two display languages, the static
// translation table, and the bilingual value type used by content records.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the two supported display languages.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"

	// Default is used when nothing else selects a language.
	Default = English
)

var matcher = language.NewMatcher([]language.Tag{language.English, language.Hindi})

// Parse maps a raw tag ("hi", "hi-IN", "en-GB", an Accept-Language value)
// onto a supported language. Anything unrecognised yields Default.
func Parse(s string) Language {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	if idx == 1 {
		return Hindi
	}
	return English
}

// Toggle returns the other language.
func Toggle(l Language) Language {
	if l == Hindi {
		return English
	}
	return Hindi
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == English || l == Hindi
}

// Tag returns the BCP-47 code for the html lang attribute.
func (l Language) Tag() string {
	if l == Hindi {
		return "hi"
	}
	return "en"
}

// Label is the name shown on the toggle button for switching to l.
func (l Language) Label() string {
	if l == Hindi {
		return "हिन्दी"
	}
	return "English"
}

// Text is a bilingual string as carried by content records.
type Text struct {
	En string
	Hi string
}

// In returns the text for lang with no fallback. Search uses this so a
// query only matches what the visitor can actually read.
func (t Text) In(lang Language) string {
	if lang == Hindi {
		return t.Hi
	}
	return t.En
}

// Or returns the text for lang, falling back to the other language when
// the requested one is blank.
func (t Text) Or(lang Language) string {
	if v := strings.TrimSpace(t.In(lang)); v != "" {
		return t.In(lang)
	}
	return t.In(Toggle(lang))
}
