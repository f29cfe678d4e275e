// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"sonchiraiya/internal/api"
	"sonchiraiya/internal/schema"
)

const (
	// maxUploadSize is the maximum accepted image size (10 MB).
	maxUploadSize = 10 << 20

	// uploadField is the name of the file input on every admin form.
	uploadField = "image_file"

	// maxCellLen caps the text shown in a manager table cell.
	maxCellLen = 80
)

// allowedImageTypes are the sniffed MIME types accepted for upload.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// formError is a failure to read an admin form. Message is safe to show
// to the admin; Error is for logs.
type formError struct {
	Message string
	reason  string
	err     error
}

func (e *formError) Error() string {
	if e.err != nil {
		return e.reason + ": " + e.err.Error()
	}
	return e.reason
}

func (e *formError) Unwrap() error { return e.err }

// errUploadTooLarge is reported when the request body exceeds the limit.
var errUploadTooLarge = &formError{
	Message: "Image too large. Maximum size is 10 MB.",
	reason:  "upload exceeds 10 MB",
}

// readForm parses an admin form submission. The returned file is nil when
// no image was chosen.
func readForm(w http.ResponseWriter, r *http.Request, s *schema.Schema) (schema.Values, *api.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1<<20)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, errUploadTooLarge
		}
		return nil, nil, &formError{Message: "Could not read the form.", reason: "parse admin form", err: err}
	}

	values := make(schema.Values, len(s.Fields))
	for _, f := range s.Fields {
		values[f.Name] = r.FormValue(f.Name)
	}

	if !s.HasUpload() {
		return values, nil, nil
	}
	file, err := readUpload(r)
	if err != nil {
		return nil, nil, err
	}
	return values, file, nil
}

// readUpload reads the image input and checks its type by content.
func readUpload(r *http.Request) (*api.File, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	file, header, err := r.FormFile(uploadField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, &formError{Message: "Could not read the image.", reason: "read upload", err: err}
	}
	defer file.Close()

	if header.Size == 0 {
		return nil, nil
	}
	if header.Size > maxUploadSize {
		return nil, errUploadTooLarge
	}

	content, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return nil, &formError{Message: "Could not read the image.", reason: "read upload", err: err}
	}
	if len(content) > maxUploadSize {
		return nil, errUploadTooLarge
	}

	contentType := http.DetectContentType(content)
	// DetectContentType reports SVG as XML or plain text.
	if strings.EqualFold(filepath.Ext(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.HasPrefix(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}
	if !allowedImageTypes[contentType] {
		return nil, &formError{
			Message: fmt.Sprintf("File type %q is not an accepted image.", contentType),
			reason:  fmt.Sprintf("rejected upload of type %s", contentType),
		}
	}

	return &api.File{
		Filename:    filepath.Base(header.Filename),
		ContentType: contentType,
		Content:     content,
	}, nil
}

// uploadMessage returns the part of a form error that is safe to show.
func uploadMessage(err error) string {
	var fe *formError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return "Could not read the form."
}

// truncate shortens s to at most limit runes, appending an ellipsis.
func truncate(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "…"
}
