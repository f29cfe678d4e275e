// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests:
// a fake content backend that records every call, and helpers that route
// requests through chi so URL parameters resolve.
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"sonchiraiya/internal/api"
	"sonchiraiya/internal/database"
	"sonchiraiya/internal/flash"
	"sonchiraiya/internal/i18n"
	"sonchiraiya/internal/metrics"
	"sonchiraiya/internal/middleware"
	"sonchiraiya/internal/render"
	"sonchiraiya/internal/session"
	"sonchiraiya/internal/store"
)

// received is one write the fake backend accepted.
type received struct {
	Fields    map[string]string
	FileField string
	FileName  string
}

// fakeBackend imitates the content API. Lists are raw JSON arrays keyed
// by resource; failures are keyed by "METHOD /path".
type fakeBackend struct {
	mu     sync.Mutex
	lists  map[string]string
	fail   map[string]int
	calls  []string
	writes map[string][]received
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		lists:  map[string]string{},
		fail:   map[string]int{},
		writes: map[string][]received{},
	}
}

func (b *fakeBackend) setList(resource, jsonArray string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lists[resource] = jsonArray
}

func (b *fakeBackend) failOn(method, path string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail[method+" "+path] = status
}

// count returns how many calls matched "METHOD /path".
func (b *fakeBackend) count(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c == key {
			n++
		}
	}
	return n
}

func (b *fakeBackend) total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func (b *fakeBackend) lastWrite(key string) (received, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ws := b.writes[key]
	if len(ws) == 0 {
		return received{}, false
	}
	return ws[len(ws)-1], true
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := r.Method + " " + r.URL.Path
	b.calls = append(b.calls, key)
	w.Header().Set("Content-Type", "application/json")

	if status, ok := b.fail[key]; ok {
		w.WriteHeader(status)
		io.WriteString(w, `{"error":"Database rejection"}`)
		return
	}

	if r.URL.Path == "/api/login" {
		var creds struct{ Username, Password string }
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password == "secret" {
			io.WriteString(w, `{"success":true}`)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"success":false,"message":"Invalid admin credentials."}`)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 2 || parts[0] != "api" {
		http.NotFound(w, r)
		return
	}
	resource := parts[1]

	switch {
	case r.Method == http.MethodGet && len(parts) == 2:
		list := b.lists[resource]
		if list == "" {
			list = "[]"
		}
		io.WriteString(w, list)

	case r.Method == http.MethodGet && len(parts) == 3:
		var items []map[string]any
		json.Unmarshal([]byte(b.lists[resource]), &items)
		for _, item := range items {
			if id, _ := item["id"].(float64); strconv.FormatInt(int64(id), 10) == parts[2] {
				json.NewEncoder(w).Encode(item)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"Not found"}`)

	case r.Method == http.MethodPost || r.Method == http.MethodPut:
		b.writes[key] = append(b.writes[key], readWrite(r))
		if r.Method == http.MethodPost {
			io.WriteString(w, `{"id":99}`)
			return
		}
		io.WriteString(w, `{"message":"updated"}`)

	case r.Method == http.MethodDelete:
		io.WriteString(w, `{"message":"deleted"}`)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// readWrite captures a multipart or JSON write body.
func readWrite(r *http.Request) received {
	rec := received{Fields: map[string]string{}}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		for k, v := range body {
			rec.Fields[k], _ = v.(string)
		}
		return rec
	}
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		return rec
	}
	for k, v := range r.MultipartForm.Value {
		rec.Fields[k] = v[0]
	}
	for field, files := range r.MultipartForm.File {
		rec.FileField = field
		rec.FileName = files[0].Filename
	}
	return rec
}

// testEnv wires handlers to a fake backend.
type testEnv struct {
	backend  *fakeBackend
	server   *httptest.Server
	client   *api.Client
	res      *api.Resources
	renderer *render.Renderer
	flash    *flash.Store
	metrics  *metrics.Metrics
	syncLog  *store.SyncLogStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	backend := newFakeBackend()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	client, err := api.New(server.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}

	fl := flash.New([]byte("0123456789abcdef0123456789abcdef"), false)
	renderer, err := render.New(render.Options{ImageURL: client.UploadURL, Flash: fl})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	db, err := database.Connect(database.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db, database.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return &testEnv{
		backend:  backend,
		server:   server,
		client:   client,
		res:      api.NewResources(client),
		renderer: renderer,
		flash:    fl,
		metrics:  metrics.New(),
		syncLog:  store.NewSyncLogStore(db, false),
	}
}

func (e *testEnv) admin() *Admin {
	return NewAdmin(e.renderer, e.client, e.res, e.syncLog, e.metrics, e.flash)
}

func (e *testEnv) public() *Public {
	p := NewPublic(e.renderer, e.res, e.flash, false)
	p.now = func() time.Time { return time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC) }
	return p
}

// reqOpts decorates a test request.
type reqOpts struct {
	htmx    bool
	lang    i18n.Language
	session *session.Data
	headers map[string]string
}

// serve routes one request through a chi router holding only h at
// pattern.
func serve(method, pattern string, h http.HandlerFunc, req *http.Request, o reqOpts) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, h)

	if o.htmx {
		req.Header.Set("HX-Request", "true")
	}
	for k, v := range o.headers {
		req.Header.Set(k, v)
	}
	lang := o.lang
	if lang == "" {
		lang = i18n.English
	}
	ctx := middleware.WithLang(req.Context(), lang)
	if o.session != nil {
		ctx = middleware.WithSession(ctx, o.session)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req.WithContext(ctx))
	return rr
}

// formRequest builds a url-encoded POST-style request.
func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// multipartRequest builds a request carrying form fields and one file.
func multipartRequest(t *testing.T, method, target string, form url.Values, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, vs := range form {
		for _, v := range vs {
			if err := mw.WriteField(k, v); err != nil {
				t.Fatalf("write field: %v", err)
			}
		}
	}
	if filename != "" {
		fw, err := mw.CreateFormFile(uploadField, filename)
		if err != nil {
			t.Fatalf("create file: %v", err)
		}
		fw.Write(content)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// triggers decodes the HX-Trigger header.
func triggers(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	raw := rr.Header().Get("HX-Trigger")
	if raw == "" {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("HX-Trigger is not JSON: %v", err)
	}
	return out
}

func toastOf(t *testing.T, rr *httptest.ResponseRecorder) (kind, text string) {
	t.Helper()
	toast, _ := triggers(t, rr)["toast"].(map[string]any)
	kind, _ = toast["kind"].(string)
	text, _ = toast["text"].(string)
	return kind, text
}

const newsFixture = `[
  {"id":7,"titleEn":"Flood relief camp opens","titleHi":"बाढ़ राहत शिविर","contentEn":"Volunteers set up a relief camp near the river bank.","contentHi":"स्वयंसेवकों ने नदी किनारे राहत शिविर लगाया।","category":"Alert","image":"camp.jpg","created_at":"2026-03-01 10:00:00"},
  {"id":8,"titleEn":"Youth sports meet announced","titleHi":"युवा खेल प्रतियोगिता","contentEn":"Registrations are open for the district sports meet.","contentHi":"जिला खेल प्रतियोगिता के लिए पंजीकरण शुरू।","category":"Event","image":"","created_at":"2026-03-05 10:00:00"},
  {"id":9,"titleEn":"Second relief update","titleHi":"राहत अपडेट","contentEn":"More supplies reached the relief camp this morning.","contentHi":"आज सुबह और सामग्री शिविर पहुंची।","category":"Alert","image":"","created_at":"2026-03-06 10:00:00"}
]`

// validNews is a news form that passes validation.
func validNews() url.Values {
	return url.Values{
		"titleEn":   {"Clean water drive begins"},
		"titleHi":   {"स्वच्छ जल अभियान शुरू"},
		"contentEn": {"The drive will cover twelve villages this month."},
		"contentHi": {"यह अभियान इस महीने बारह गांवों को कवर करेगा।"},
		"category":  {"General"},
	}
}

// pngBytes starts with the PNG signature so content sniffing accepts it.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
