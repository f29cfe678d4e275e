// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Sonchiraiya site.
// Handlers are grouped by concern (admin, public, auth) and receive
// their dependencies through the handler struct.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"sonchiraiya/internal/api"
	"sonchiraiya/internal/flash"
	"sonchiraiya/internal/listing"
	"sonchiraiya/internal/metrics"
	"sonchiraiya/internal/middleware"
	"sonchiraiya/internal/models"
	"sonchiraiya/internal/render"
	"sonchiraiya/internal/schema"
	"sonchiraiya/internal/store"
)

// Admin groups the admin panel handlers. Every resource is managed by
// the same generic handlers, driven by its schema.
type Admin struct {
	renderer *render.Renderer
	client   *api.Client
	records  map[string]collection
	syncLog  *store.SyncLogStore
	metrics  *metrics.Metrics
	flash    *flash.Store
	now      func() time.Time
}

// NewAdmin creates the admin handler group. syncLog may be nil when no
// database is configured.
func NewAdmin(renderer *render.Renderer, client *api.Client, res *api.Resources, syncLog *store.SyncLogStore, m *metrics.Metrics, fl *flash.Store) *Admin {
	return &Admin{
		renderer: renderer,
		client:   client,
		records:  collections(res),
		syncLog:  syncLog,
		metrics:  m,
		flash:    fl,
		now:      time.Now,
	}
}

// resourceCount is one dashboard tile.
type resourceCount struct {
	Resource string
	Title    string
	Count    int
	Failed   bool
}

// Dashboard shows record counts per resource and recent admin activity.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts := make([]resourceCount, len(schema.Admin))
	var (
		activity []store.SyncEntry
		failures int
		g        errgroup.Group
	)
	for i, s := range schema.Admin {
		g.Go(func() error {
			items, err := a.records[s.Resource].List(ctx)
			counts[i] = resourceCount{Resource: s.Resource, Title: s.Title, Count: len(items), Failed: err != nil}
			if err != nil {
				slog.Warn("dashboard count failed", "resource", s.Resource, "error", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		var err error
		if activity, err = a.syncLog.Recent(ctx, "", 15); err != nil {
			slog.Warn("load sync log failed", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if failures, err = a.syncLog.CountFailures(ctx, a.now().Add(-24*time.Hour)); err != nil {
			slog.Warn("count sync failures failed", "error", err)
		}
		return nil
	})
	_ = g.Wait()

	a.renderer.Page(w, r, "admin/dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"Counts":      counts,
			"SyncEnabled": a.syncLog != nil,
			"Activity":    activity,
			"Failures":    failures,
		},
	})
}

// List renders the manager table of a resource.
func (a *Admin) List(w http.ResponseWriter, r *http.Request) {
	s, col, ok := a.resource(w, r, false)
	if !ok {
		return
	}
	a.renderer.Page(w, r, "admin/manager", &render.PageData{
		Title:   s.Title,
		Section: s.Resource,
		Data:    a.managerData(r.Context(), s, col),
	})
}

// New renders an empty form, inside the modal for HTMX requests.
func (a *Admin) New(w http.ResponseWriter, r *http.Request) {
	s, _, ok := a.resource(w, r, true)
	if !ok {
		return
	}
	a.renderForm(w, r, http.StatusOK, &formState{
		schema: s,
		values: schema.Values{},
		modal:  render.IsHTMX(r),
	})
}

// Edit renders the form pre-filled from the record. The backend has no
// single-item endpoint for every resource, so the record is found in the
// list.
func (a *Admin) Edit(w http.ResponseWriter, r *http.Request) {
	s, col, ok := a.resource(w, r, true)
	if !ok {
		return
	}
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	items, err := col.List(r.Context())
	if err != nil {
		slog.Error("load record for edit failed", "resource", s.Resource, "id", id, "error", err)
		a.fail(w, r, s, api.Message(err))
		return
	}
	rec, found := listing.FindByID(items, id)
	if !found {
		a.fail(w, r, s, s.Singular+" not found. It may have been deleted.")
		return
	}

	a.renderForm(w, r, http.StatusOK, &formState{
		schema:   s,
		id:       id,
		values:   rec.Values(),
		imageURL: a.client.UploadURL(s.Folder, rec.ImageRef()),
		modal:    render.IsHTMX(r),
	})
}

// Create validates the form and creates the record on the backend.
func (a *Admin) Create(w http.ResponseWriter, r *http.Request) {
	s, col, ok := a.resource(w, r, true)
	if !ok {
		return
	}
	a.save(w, r, s, col, 0)
}

// Update validates the form and replaces the record on the backend. It
// serves both PUT and the POST fallback for browsers without JavaScript.
func (a *Admin) Update(w http.ResponseWriter, r *http.Request) {
	s, col, ok := a.resource(w, r, true)
	if !ok {
		return
	}
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	a.save(w, r, s, col, id)
}

func (a *Admin) save(w http.ResponseWriter, r *http.Request, s *schema.Schema, col collection, id int64) {
	ctx := r.Context()
	state := &formState{schema: s, id: id}

	// readForm caps the body size, so nothing may parse the form first.
	values, file, err := readForm(w, r, s)
	state.modal = r.FormValue("modal") == "1"
	if err != nil {
		slog.Warn("admin form rejected", "resource", s.Resource, "error", err)
		state.values = schema.Values{}
		for _, f := range s.Fields {
			state.values[f.Name] = r.FormValue(f.Name)
		}
		state.formError = uploadMessage(err)
		a.renderForm(w, r, http.StatusUnprocessableEntity, state)
		return
	}

	state.values = s.Normalize(values)
	errs := s.Validate(state.values)
	if id == 0 && file == nil && s.ImageRequired {
		errs[uploadField] = schema.ImageMissing
	}
	if errs.Any() {
		state.errors = errs
		a.renderForm(w, r, http.StatusUnprocessableEntity, state)
		return
	}

	action := store.ActionCreate
	payload := s.Payload(state.values, file)
	if id == 0 {
		id, err = col.Create(ctx, payload)
	} else {
		action = store.ActionUpdate
		err = col.Update(ctx, id, payload)
	}
	a.audit(ctx, s, action, id, err)

	if err != nil {
		slog.Error("save record failed", "resource", s.Resource, "action", action, "id", id, "error", err)
		state.formError = api.Message(err)
		render.Trigger(w, map[string]any{"toast": render.Toast(flash.KindError, state.formError)})
		a.renderForm(w, r, http.StatusUnprocessableEntity, state)
		return
	}

	msg := s.Singular + " created."
	if action == store.ActionUpdate {
		msg = s.Singular + " updated."
	}
	a.saved(w, r, s, col, state.modal, msg)
}

// saved answers a successful write. A modal submission gets the refreshed
// manager table swapped in and the modal closed; other HTMX requests and
// plain form posts are redirected back to the list.
func (a *Admin) saved(w http.ResponseWriter, r *http.Request, s *schema.Schema, col collection, modal bool, msg string) {
	listURL := "/admin/" + s.Resource

	if !render.IsHTMX(r) {
		a.flash.Add(w, r, flash.KindSuccess, msg)
		http.Redirect(w, r, listURL, http.StatusSeeOther)
		return
	}
	if !modal {
		a.flash.Add(w, r, flash.KindSuccess, msg)
		w.Header().Set("HX-Redirect", listURL)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("HX-Retarget", "#manager")
	w.Header().Set("HX-Reswap", "outerHTML")
	render.Trigger(w, map[string]any{
		"modal:close": nil,
		"toast":       render.Toast(flash.KindSuccess, msg),
	})
	a.renderer.Fragment(w, r, http.StatusOK, "admin/manager", "manager", &render.PageData{
		Section: s.Resource,
		Data:    a.managerData(r.Context(), s, col),
	})
}

// Delete removes a record. HTMX requests get the refreshed table; the
// POST fallback redirects back to the list.
func (a *Admin) Delete(w http.ResponseWriter, r *http.Request) {
	s, col, ok := a.resource(w, r, false)
	if !ok {
		return
	}
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	err := col.Remove(ctx, id)
	a.audit(ctx, s, store.ActionDelete, id, err)

	kind, msg := flash.KindSuccess, s.Singular+" deleted."
	if err != nil {
		slog.Error("delete record failed", "resource", s.Resource, "id", id, "error", err)
		kind, msg = flash.KindError, api.Message(err)
	}

	if !render.IsHTMX(r) {
		a.flash.Add(w, r, kind, msg)
		http.Redirect(w, r, "/admin/"+s.Resource, http.StatusSeeOther)
		return
	}

	render.Trigger(w, map[string]any{"toast": render.Toast(kind, msg)})
	a.renderer.Fragment(w, r, http.StatusOK, "admin/manager", "manager", &render.PageData{
		Section: s.Resource,
		Data:    a.managerData(ctx, s, col),
	})
}

// SuggestSlug returns the slug field pre-filled from the title typed so
// far.
func (a *Admin) SuggestSlug(w http.ResponseWriter, r *http.Request) {
	s, _, ok := a.resource(w, r, true)
	if !ok {
		return
	}
	var slugField schema.Field
	for _, f := range s.Fields {
		if f.Kind == schema.KindSlug {
			slugField = f
		}
	}
	if s.SlugFrom == "" || slugField.Name == "" {
		http.NotFound(w, r)
		return
	}

	suggestion := s.SuggestSlug(schema.Values{s.SlugFrom: r.FormValue(s.SlugFrom)})
	a.renderer.Partial(w, http.StatusOK, "admin/form", "field", formField{Field: slugField, Value: suggestion})
}

// resource resolves the {resource} URL parameter. writable rejects
// read-only resources. It writes a 404 and returns false on failure.
func (a *Admin) resource(w http.ResponseWriter, r *http.Request, writable bool) (*schema.Schema, collection, bool) {
	s, ok := schema.Lookup(chi.URLParam(r, "resource"))
	if !ok || (writable && s.ReadOnly) {
		http.NotFound(w, r)
		return nil, nil, false
	}
	col, ok := a.records[s.Resource]
	if !ok {
		http.NotFound(w, r)
		return nil, nil, false
	}
	return s, col, true
}

func recordID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid record ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// fail reports an error that prevents a form from opening. HTMX requests
// get a toast and no swap; others go back to the list.
func (a *Admin) fail(w http.ResponseWriter, r *http.Request, s *schema.Schema, msg string) {
	if render.IsHTMX(r) {
		render.Trigger(w, map[string]any{"toast": render.Toast(flash.KindError, msg)})
		w.WriteHeader(http.StatusNoContent)
		return
	}
	a.flash.Add(w, r, flash.KindError, msg)
	http.Redirect(w, r, "/admin/"+s.Resource, http.StatusSeeOther)
}

// audit records the outcome of a write in metrics and the sync log.
func (a *Admin) audit(ctx context.Context, s *schema.Schema, action string, id int64, err error) {
	a.metrics.AdminWrite(s.Resource, action, err == nil)

	entry := store.SyncEntry{
		Resource:  s.Resource,
		Action:    action,
		RecordID:  id,
		OK:        err == nil,
		RequestID: chimw.GetReqID(ctx),
	}
	if sess := middleware.SessionFromCtx(ctx); sess != nil {
		entry.Username = sess.Username
	}
	if err != nil {
		entry.Message = api.Message(err)
	}
	a.syncLog.Log(ctx, entry)
}

// row is one manager table row.
type row struct {
	ID    int64
	Image string
	Cells []string
}

// managerData fetches the resource list once and shapes it for the
// manager template.
func (a *Admin) managerData(ctx context.Context, s *schema.Schema, col collection) map[string]any {
	headers := make([]string, 0, len(s.Columns))
	for _, name := range s.Columns {
		if f, ok := s.Field(name); ok {
			headers = append(headers, f.Label)
		}
	}

	data := map[string]any{"Schema": s, "Headers": headers}

	items, err := col.List(ctx)
	if err != nil {
		slog.Error("list records failed", "resource", s.Resource, "error", err)
		data["LoadError"] = api.Message(err)
	}
	data["Rows"] = a.rows(s, items)
	return data
}

func (a *Admin) rows(s *schema.Schema, items []models.Record) []row {
	rows := make([]row, 0, len(items))
	for _, rec := range items {
		values := rec.Values()
		rw := row{ID: rec.RecordID(), Cells: make([]string, 0, len(s.Columns))}
		if s.HasUpload() {
			rw.Image = a.client.UploadURL(s.Folder, rec.ImageRef())
			if rw.Image == "" {
				rw.Image = render.PlaceholderImage
			}
		}
		for _, name := range s.Columns {
			rw.Cells = append(rw.Cells, truncate(values[name], maxCellLen))
		}
		rows = append(rows, rw)
	}
	return rows
}

// formField is what the "field" template renders.
type formField struct {
	Field   schema.Field
	Value   string
	Error   string
	SlugURL string
}

// formState carries a form between validation and rendering.
type formState struct {
	schema    *schema.Schema
	id        int64
	values    schema.Values
	errors    schema.Errors
	formError string
	imageURL  string
	modal     bool
}

func (st *formState) fields() []formField {
	s := st.schema
	out := make([]formField, 0, len(s.Fields))
	for _, f := range s.Fields {
		ff := formField{Field: f, Value: st.values[f.Name], Error: st.errors[f.Name]}
		if st.id == 0 && f.Name == s.SlugFrom {
			ff.SlugURL = "/admin/" + s.Resource + "/slug"
		}
		out = append(out, ff)
	}
	return out
}

// renderForm renders only the form for HTMX requests and the full form
// page otherwise.
func (a *Admin) renderForm(w http.ResponseWriter, r *http.Request, status int, st *formState) {
	s := st.schema
	action := "/admin/" + s.Resource
	title := "New " + s.Singular
	if st.id != 0 {
		action += "/" + strconv.FormatInt(st.id, 10)
		title = "Edit " + s.Singular
	}

	data := &render.PageData{
		Title:   title,
		Section: s.Resource,
		Data: map[string]any{
			"Schema":     s,
			"ID":         st.id,
			"Action":     action,
			"Fields":     st.fields(),
			"FormError":  st.formError,
			"ImageURL":   st.imageURL,
			"ImageError": st.errors[uploadField],
			"Modal":      st.modal,
		},
	}
	if render.IsHTMX(r) {
		a.renderer.Fragment(w, r, status, "admin/form", "form", data)
		return
	}
	a.renderer.PageStatus(w, r, status, "admin/form", data)
}
