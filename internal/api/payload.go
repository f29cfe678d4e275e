// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
)

// Field is one named text value of a request body.
type Field struct {
	Name  string
	Value string
}

// File is an optional upload attached to a multipart payload.
type File struct {
	Field       string // multipart field name the backend expects, e.g. "hero"
	Filename    string
	ContentType string
	Content     []byte
}

// Payload is an ordered set of fields plus at most one file. It encodes
// as multipart/form-data unless built with NewJSONPayload.
type Payload struct {
	fields []Field
	file   *File
	json   bool
}

// NewPayload returns an empty multipart payload.
func NewPayload() *Payload {
	return &Payload{}
}

// NewJSONPayload returns an empty payload encoded as a flat JSON object.
// Files are ignored in this mode.
func NewJSONPayload() *Payload {
	return &Payload{json: true}
}

// Set appends a field. Fields keep insertion order on the wire.
func (p *Payload) Set(name, value string) *Payload {
	p.fields = append(p.fields, Field{Name: name, Value: value})
	return p
}

// Attach sets the file part, replacing any earlier one.
func (p *Payload) Attach(f *File) *Payload {
	p.file = f
	return p
}

// Fields returns the text fields in order.
func (p *Payload) Fields() []Field {
	return p.fields
}

// Get returns the value of the first field called name.
func (p *Payload) Get(name string) (string, bool) {
	for _, f := range p.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// File returns the attached file, or nil.
func (p *Payload) File() *File {
	return p.file
}

// encode renders the body and its Content-Type header value.
func (p *Payload) encode() (io.Reader, string, error) {
	if p.json {
		obj := make(map[string]string, len(p.fields))
		for _, f := range p.fields {
			obj[f.Name] = f.Value
		}
		b, err := json.Marshal(obj)
		if err != nil {
			return nil, "", fmt.Errorf("encode json payload: %w", err)
		}
		return bytes.NewReader(b), "application/json", nil
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range p.fields {
		if err := mw.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}

	if p.file != nil && len(p.file.Content) > 0 {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, p.file.Field, p.file.Filename))
		ct := p.file.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := mw.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create file part: %w", err)
		}
		if _, err := part.Write(p.file.Content); err != nil {
			return nil, "", fmt.Errorf("write file part: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}
