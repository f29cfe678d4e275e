// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site and
// the admin panel. It supports full-page and HTMX partial rendering,
// detecting the request type via the HX-Request header.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"sonchiraiya/internal/flash"
	"sonchiraiya/internal/i18n"
	"sonchiraiya/internal/markdown"
	"sonchiraiya/internal/middleware"
	"sonchiraiya/internal/models"
	"sonchiraiya/internal/schema"
	"sonchiraiya/internal/session"
)

//go:embed templates
var templateFS embed.FS

// Template sets. Each page in a set is parsed together with the set's
// base.html and every file under its partials/ directory.
const (
	SetAdmin  = "admin"
	SetPublic = "public"
)

// PlaceholderImage is shown wherever a record has no image.
const PlaceholderImage = "/static/img/placeholder.svg"

// PageData holds all data passed to templates.
type PageData struct {
	Title     string          // Page title for <title> tag
	Section   string          // Active navigation entry (e.g. "news", "dashboard")
	Lang      i18n.Language   // Active display language
	Session   *session.Data   // Current admin session (nil if unauthenticated)
	CSRFToken string          // CSRF token for forms and HTMX headers
	Flashes   []flash.Message // One-time notification messages
	Data      map[string]any  // Page-specific data
}

// Options configures a Renderer.
type Options struct {
	// DevMode loads htmx unminified.
	DevMode bool
	// ImageURL resolves a record image reference within an uploads folder.
	ImageURL func(folder, ref string) string
	// Flash, when set, supplies pending toasts to every full page.
	Flash *flash.Store
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	flash     *flash.Store
}

// standaloneTemplates render as full HTML pages without the base layout.
var standaloneTemplates = map[string]bool{
	"admin/login": true,
}

// New parses every page template of both sets from the embedded
// filesystem.
func New(opts Options) (*Renderer, error) {
	if opts.ImageURL == nil {
		opts.ImageURL = func(_, ref string) string { return ref }
	}
	rn := &Renderer{
		templates: make(map[string]*template.Template),
		flash:     opts.Flash,
	}
	funcs := funcMap(opts)

	for _, set := range []string{SetAdmin, SetPublic} {
		dir := "templates/" + set
		partials, err := fs.Glob(templateFS, dir+"/partials/*.html")
		if err != nil {
			return nil, fmt.Errorf("glob partials: %w", err)
		}

		entries, err := templateFS.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read embedded templates: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || e.Name() == "base.html" || path.Ext(e.Name()) != ".html" {
				continue
			}
			name := set + "/" + strings.TrimSuffix(e.Name(), ".html")

			files := []string{dir + "/" + e.Name()}
			root := e.Name()
			if !standaloneTemplates[name] {
				files = append([]string{dir + "/base.html"}, files...)
				root = "base.html"
			}
			files = append(files, partials...)

			tmpl, err := template.New(root).Funcs(funcs).ParseFS(templateFS, files...)
			if err != nil {
				return nil, fmt.Errorf("parse template %s: %w", name, err)
			}
			rn.templates[name] = tmpl
		}
	}

	return rn, nil
}

// Has reports whether a page template was parsed.
func (rn *Renderer) Has(name string) bool {
	_, ok := rn.templates[name]
	return ok
}

// Page renders a full page, or only its "content" block for HTMX requests,
// with status 200.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	rn.PageStatus(w, r, http.StatusOK, name, data)
}

// PageStatus is Page with an explicit status code.
func (rn *Renderer) PageStatus(w http.ResponseWriter, r *http.Request, status int, name string, data *PageData) {
	block := "base.html"
	if standaloneTemplates[name] {
		block = path.Base(name) + ".html"
	}
	if IsHTMX(r) && !standaloneTemplates[name] {
		block = "content"
	}
	rn.execute(w, r, status, name, block, data)
}

// Fragment renders one named block of a page template. It is used for
// HTMX swaps that target something smaller than the content area.
func (rn *Renderer) Fragment(w http.ResponseWriter, r *http.Request, status int, name, block string, data *PageData) {
	rn.execute(w, r, status, name, block, data)
}

func (rn *Renderer) execute(w http.ResponseWriter, r *http.Request, status int, name, block string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = &PageData{}
	}

	ctx := r.Context()
	data.CSRFToken = middleware.CSRFTokenFromCtx(ctx)
	data.Lang = middleware.LangFromCtx(ctx)
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(ctx)
	}
	if data.Data == nil {
		data.Data = map[string]any{}
	}

	// Flashes are consumed only by full page loads. Popping writes a
	// cookie, so it has to happen before the body.
	if rn.flash != nil && !IsHTMX(r) {
		data.Flashes = append(data.Flashes, rn.flash.Pop(w, r)...)
	}

	write(w, tmpl, status, name, block, data)
}

// Partial renders one block of a page template with arbitrary data. No
// request state is injected.
func (rn *Renderer) Partial(w http.ResponseWriter, status int, name, block string, data any) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}
	write(w, tmpl, status, name, block, data)
}

// write buffers the output so a failing template never leaves a
// half-written page behind.
func write(w http.ResponseWriter, tmpl *template.Template, status int, name, block string, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, block, data); err != nil {
		slog.Error("template execution failed", "template", name, "block", block, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("write response", "error", err)
	}
}

// IsHTMX returns true if the request was made by HTMX (has HX-Request
// header). Boosted navigations want the whole page.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Boosted") != "true"
}

// Trigger sets the HX-Trigger header from a map of event names to
// details. A nil detail fires the event without payload.
func Trigger(w http.ResponseWriter, events map[string]any) {
	b, err := json.Marshal(events)
	if err != nil {
		slog.Warn("encode HX-Trigger", "error", err)
		return
	}
	w.Header().Set("HX-Trigger", string(b))
}

// Toast is the detail of the "toast" client event.
func Toast(kind, text string) map[string]string {
	return map[string]string{"kind": kind, "text": text}
}

func funcMap(opts Options) template.FuncMap {
	img := func(folder, ref string) string {
		if u := opts.ImageURL(folder, ref); u != "" {
			return u
		}
		return PlaceholderImage
	}

	return template.FuncMap{
		"t":  i18n.T,
		"tf": i18n.Tf,
		// text picks the active language, falling back to the other one.
		"text":   func(lang i18n.Language, t i18n.Text) string { return t.Or(lang) },
		"toggle": i18n.Toggle,
		"img":    img,
		"record": func(folder string, rec models.Record) string { return img(folder, rec.ImageRef()) },
		"date": func(lang i18n.Language, v any) string {
			if t, ok := asTime(v); ok {
				return i18n.FormatDate(lang, t)
			}
			return ""
		},
		"datetime": func(lang i18n.Language, v any) string {
			if t, ok := asTime(v); ok {
				return i18n.FormatDateTime(lang, t)
			}
			return ""
		},
		"isoDate": func(v any) string {
			if t, ok := asTime(v); ok {
				return t.Format("2006-01-02T15:04")
			}
			return ""
		},
		"markdown": markdown.Render,
		"excerpt":  func(limit int, s string) string { return markdown.Excerpt(s, limit) },
		"isDev":    func() bool { return opts.DevMode },
		"activeClass": func(current, target string) string {
			if current == target {
				return "active"
			}
			return ""
		},
		"padTwo": func(n int) string { return fmt.Sprintf("%02d", n) },
		"add":    func(a, b int) int { return a + b },
		// dict builds a map for passing several values to a sub-template.
		"dict": func(kv ...any) (map[string]any, error) {
			if len(kv)%2 != 0 {
				return nil, fmt.Errorf("dict: odd number of arguments")
			}
			m := make(map[string]any, len(kv)/2)
			for i := 0; i < len(kv); i += 2 {
				k, ok := kv[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
				}
				m[k] = kv[i+1]
			}
			return m, nil
		},
		"year":           func() int { return time.Now().Year() },
		"adminResources": func() []*schema.Schema { return schema.Admin },
	}
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case models.Date:
		return t.Time, !t.IsZero()
	case *models.Date:
		if t == nil {
			return time.Time{}, false
		}
		return t.Time, !t.IsZero()
	}
	return time.Time{}, false
}
