// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sonchiraiya/internal/api"
)

func TestHeroValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      Values
		wantErr map[string]bool
	}{
		{"valid", Values{"description": "Welcome home", "display_order": "1"}, nil},
		{"blank order becomes zero", Values{"description": "Welcome home", "display_order": ""}, nil},
		{"short description", Values{"description": "Hey", "display_order": "0"}, map[string]bool{"description": true}},
		{"negative order", Values{"description": "Welcome home", "display_order": "-1"}, map[string]bool{"display_order": true}},
		{"non numeric order", Values{"description": "Welcome home", "display_order": "first"}, map[string]bool{"display_order": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Hero.Validate(Hero.Normalize(tt.in))
			assert.Len(t, errs, len(tt.wantErr))
			for field := range tt.wantErr {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestNewsValidationMessages(t *testing.T) {
	errs := News.Validate(News.Normalize(Values{
		"titleEn":   "Camp",
		"titleHi":   "स्वास्थ्य शिविर",
		"contentEn": "A free health camp for every resident.",
		"contentHi": "छोटा",
	}))

	assert.Equal(t, "English title must be at least 5 characters.", errs["titleEn"])
	assert.Equal(t, "Hindi content is too short.", errs["contentHi"])
	assert.Equal(t, "Please select a category.", errs["category"])
	assert.NotContains(t, errs, "titleHi")
	assert.NotContains(t, errs, "contentEn")
}

func TestRuneCountForHindi(t *testing.T) {
	// Five Devanagari code points, many more bytes.
	errs := News.Validate(Values{
		"titleEn":   "Hello",
		"titleHi":   "नमस्ते",
		"contentEn": strings.Repeat("a", 20),
		"contentHi": strings.Repeat("क", 20),
		"category":  "General",
	})
	assert.False(t, errs.Any(), "unexpected errors: %v", errs)
}

func TestEventValidation(t *testing.T) {
	valid := Values{
		"eventName":     "Annual Meet",
		"location":      "Lucknow",
		"descriptionEn": "Our yearly public gathering.",
		"descriptionHi": "हमारी वार्षिक सार्वजनिक सभा का आयोजन।",
		"date":          "2024-06-01T18:00",
	}
	assert.False(t, Events.Validate(Events.Normalize(valid)).Any())

	missingDate := Values{}
	for k, v := range valid {
		missingDate[k] = v
	}
	missingDate["date"] = ""
	errs := Events.Validate(Events.Normalize(missingDate))
	assert.Equal(t, "Date is required.", errs["date"])

	missingDate["date"] = "June first"
	assert.Contains(t, Events.Validate(Events.Normalize(missingDate)), "date")
}

func TestInitiativeSlugRules(t *testing.T) {
	base := Values{
		"titleEn":       "Clean Water",
		"titleHi":       "स्वच्छ जल",
		"descriptionEn": "Water for every home.",
		"descriptionHi": "हर घर के लिए पानी।",
		"display_order": "2",
	}

	tests := []struct {
		slug string
		ok   bool
	}{
		{"clean-water", true},
		{"c", false},
		{"Clean-Water", false},
		{"clean water", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			in := Values{"slug": tt.slug}
			for k, v := range base {
				in[k] = v
			}
			errs := Initiatives.Validate(Initiatives.Normalize(in))
			_, bad := errs["slug"]
			assert.Equal(t, !tt.ok, bad)
		})
	}
}

func TestSuggestSlug(t *testing.T) {
	got := Initiatives.SuggestSlug(Values{"titleEn": "Youth & Education Drive"})
	assert.Equal(t, "youth-education-drive", got)
	assert.Equal(t, "", Hero.SuggestSlug(Values{"description": "x"}))
}

func TestContactValidation(t *testing.T) {
	errs := Contact.Validate(Contact.Normalize(Values{
		"name":    "A",
		"email":   "not-an-email",
		"message": "short",
	}))
	assert.Len(t, errs, 3)
	assert.NotContains(t, errs, "phone")

	ok := Contact.Validate(Contact.Normalize(Values{
		"name":    "Asha Sharma",
		"email":   "asha@example.org",
		"message": "Please repair the street lights.",
	}))
	assert.False(t, ok.Any())
}

func TestPayloadWireNames(t *testing.T) {
	v := Hero.Normalize(Values{"description": "  Welcome  ", "display_order": "3.0", "extra": "dropped"})
	p := Hero.Payload(v, &api.File{Filename: "slide.jpg", Content: []byte("x")})

	assert.Equal(t, []api.Field{
		{Name: "subtitle", Value: "Welcome"},
		{Name: "display_order", Value: "3"},
	}, p.Fields())
	require.NotNil(t, p.File())
	assert.Equal(t, "hero", p.File().Field)
}

func TestPayloadEventDate(t *testing.T) {
	v := Events.Normalize(Values{"date": "2024-06-01T18:30"})
	p := Events.Payload(v, nil)

	got, ok := p.Get("date")
	require.True(t, ok)
	assert.Equal(t, "2024-06-01 18:30:00", got)
	assert.Nil(t, p.File())
}

func TestErrorsFirstIsStable(t *testing.T) {
	errs := Errors{"titleHi": "b", "contentEn": "a"}
	assert.Equal(t, "a", errs.First())
	assert.Equal(t, "", Errors{}.First())
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("initiatives")
	require.True(t, ok)
	assert.Equal(t, "initiative_img", s.FileField)

	_, ok = Lookup("users")
	assert.False(t, ok)

	for _, s := range Admin {
		for _, col := range s.Columns {
			_, ok := s.Field(col)
			assert.True(t, ok, "%s column %q has no field", s.Resource, col)
		}
	}
}
