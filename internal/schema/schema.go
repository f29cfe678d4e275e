// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package schema describes each admin resource form as data: its fields,
// their validation rules, and how typed values map onto backend wire
// names. One generic form and manager are driven from these descriptions.
package schema

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"sonchiraiya/internal/api"
	"sonchiraiya/internal/slug"
)

// Kind selects how a field is rendered and normalised.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindNumber   Kind = "number"
	KindDate     Kind = "datetime-local"
	KindSlug     Kind = "slug"
	KindSelect   Kind = "select"
	KindEmail    Kind = "email"
)

// backendDateLayout is what the events endpoint stores verbatim.
const backendDateLayout = "2006-01-02 15:04:05"

// formDateLayouts are the shapes a date input may submit.
var formDateLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05", "2006-01-02"}

// Field is one form input.
type Field struct {
	Name        string // form input name and key in Values
	Wire        string // backend field name; Name when empty
	Label       string
	Kind        Kind
	Rules       string // validator tag, e.g. "required,min=5"
	Message     string // shown when Rules fail
	Options     []string
	Placeholder string
	Hindi       bool // render with lang="hi"
}

// WireName returns the backend name of the field.
func (f Field) WireName() string {
	if f.Wire != "" {
		return f.Wire
	}
	return f.Name
}

// Schema describes one resource.
type Schema struct {
	Resource  string // backend resource, e.g. "news"
	Title     string // plural heading
	Singular  string
	Folder    string // uploads folder for image URLs
	FileField string // multipart file part name; empty when the resource has no upload
	ReadOnly  bool   // no create or edit forms
	Fields    []Field
	Columns   []string // field names shown in the manager table
	SlugFrom  string   // field whose value seeds the slug suggestion

	// ImageRequired rejects a new record submitted without an image.
	ImageRequired bool
}

// ImageMissing is the inline message for a required image left empty.
const ImageMissing = "Please select an image."


// Field looks up a field by name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// HasUpload reports whether the form carries an image input.
func (s *Schema) HasUpload() bool {
	return s.FileField != ""
}

// Values are raw form inputs keyed by field name.
type Values map[string]string

// Errors maps field names to validation messages.
type Errors map[string]string

// Any reports whether there is at least one error.
func (e Errors) Any() bool {
	return len(e) > 0
}

// First returns one message, picking the alphabetically first field so
// the result is stable.
func (e Errors) First() string {
	if len(e) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return e[keys[0]]
}

// validate is shared by every schema. It is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slug.Valid(fl.Field().String())
	})
	_ = v.RegisterValidation("nonnegint", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Field().String())
		return err == nil && n >= 0
	})
	_ = v.RegisterValidation("formdate", func(fl validator.FieldLevel) bool {
		_, ok := parseFormDate(fl.Field().String())
		return ok
	})
	return v
}

// Normalize trims every declared field and coerces numbers so that a
// blank number becomes "0". Unknown keys are dropped.
func (s *Schema) Normalize(in Values) Values {
	out := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		v := strings.TrimSpace(in[f.Name])
		if f.Kind == KindNumber {
			v = coerceNumber(v)
		}
		out[f.Name] = v
	}
	return out
}

// Validate checks normalised values against each field's rules.
func (s *Schema) Validate(v Values) Errors {
	errs := make(Errors)
	for _, f := range s.Fields {
		if f.Rules == "" {
			continue
		}
		if err := validate.Var(v[f.Name], f.Rules); err != nil {
			errs[f.Name] = f.Message
		}
	}
	return errs
}

// Payload maps normalised values onto the backend's wire names in field
// order. file may be nil, in which case the existing image is kept.
func (s *Schema) Payload(v Values, file *api.File) *api.Payload {
	p := api.NewPayload()
	for _, f := range s.Fields {
		val := v[f.Name]
		if f.Kind == KindDate {
			if t, ok := parseFormDate(val); ok {
				val = t.Format(backendDateLayout)
			}
		}
		p.Set(f.WireName(), val)
	}
	if file != nil && s.HasUpload() {
		file.Field = s.FileField
		p.Attach(file)
	}
	return p
}

// SuggestSlug derives a slug from the SlugFrom field.
func (s *Schema) SuggestSlug(v Values) string {
	if s.SlugFrom == "" {
		return ""
	}
	return slug.Generate(v[s.SlugFrom])
}

// coerceNumber turns the input into a base-10 integer string. Blank input
// becomes "0"; anything unparseable is returned as-is for validation to
// reject.
func coerceNumber(v string) string {
	if v == "" {
		return "0"
	}
	if n, err := strconv.Atoi(v); err == nil {
		return strconv.Itoa(n)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && f == float64(int(f)) {
		return strconv.Itoa(int(f))
	}
	return v
}

func parseFormDate(v string) (time.Time, bool) {
	for _, layout := range formDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
