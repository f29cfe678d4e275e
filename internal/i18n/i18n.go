// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package i18n

import (
	"fmt"
	"time"
)

// T looks up key in the translation table. Unknown keys come back
// unchanged so a missing entry shows up on the page instead of failing.
func T(lang Language, key string) string {
	entry, ok := catalog[key]
	if !ok {
		return key
	}
	return entry.In(lang)
}

// Tf is T followed by fmt.Sprintf over the translated pattern.
func Tf(lang Language, key string, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// Has reports whether key exists in the table.
func Has(key string) bool {
	_, ok := catalog[key]
	return ok
}

var hindiMonths = [...]string{
	"जनवरी", "फ़रवरी", "मार्च", "अप्रैल", "मई", "जून",
	"जुलाई", "अगस्त", "सितंबर", "अक्टूबर", "नवंबर", "दिसंबर",
}

// FormatDate renders a calendar date for display: "June 1, 2024" in
// English and "1 जून 2024" in Hindi. Digits stay Latin in both.
func FormatDate(lang Language, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if lang == Hindi {
		return fmt.Sprintf("%d %s %d", t.Day(), hindiMonths[t.Month()-1], t.Year())
	}
	return t.Format("January 2, 2006")
}

// FormatDateTime adds the clock time to FormatDate.
func FormatDateTime(lang Language, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return FormatDate(lang, t) + ", " + t.Format("3:04 PM")
}
