// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// dateLayouts are tried in order when decoding a date from the API. The
// backend sends ISO-8601 timestamps for most columns and the raw MySQL
// DATETIME form for a few.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Date wraps time.Time with lenient JSON decoding. An empty or null value
// decodes to the zero time.
type Date struct {
	time.Time
}

// ParseDate parses s against every supported layout.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognised date %q", s)
}

// UnmarshalJSON accepts a quoted date in any supported layout. A value
// in no known layout decodes to the zero Date, so one bad row does not
// fail a whole list.
func (d *Date) UnmarshalJSON(b []byte) error {
	*d = Date{}
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		slog.Debug("ignoring non-string date", "value", string(b))
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		slog.Debug("ignoring unparseable date", "error", err)
		return nil
	}
	*d = parsed
	return nil
}

// MarshalJSON writes RFC 3339, or null for the zero value.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(time.RFC3339))
}

// InputValue formats the date for an <input type="datetime-local">.
func (d Date) InputValue() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02T15:04")
}
