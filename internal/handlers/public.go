// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"sonchiraiya/internal/api"
	"sonchiraiya/internal/flash"
	"sonchiraiya/internal/i18n"
	"sonchiraiya/internal/listing"
	"sonchiraiya/internal/middleware"
	"sonchiraiya/internal/models"
	"sonchiraiya/internal/render"
	"sonchiraiya/internal/schema"
)

// Home page section sizes.
const (
	homeNews        = 3
	homeInitiatives = 3
	homeEvents      = 3
	homeGallery     = 8
	relatedNews     = 3
)

// Public groups the handlers of the bilingual public site. Content is
// read from the backend on every request.
type Public struct {
	renderer *render.Renderer
	res      *api.Resources
	flash    *flash.Store
	secure   bool
	now      func() time.Time
}

// NewPublic creates a new Public handler group. secure marks the
// language cookie HTTPS-only.
func NewPublic(renderer *render.Renderer, res *api.Resources, fl *flash.Store, secure bool) *Public {
	return &Public{
		renderer: renderer,
		res:      res,
		flash:    fl,
		secure:   secure,
		now:      time.Now,
	}
}

// Home renders the landing page. Its sections load concurrently and a
// failing section is left empty rather than failing the page.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.LangFromCtx(ctx)

	var (
		slides      []models.HeroSlide
		news        []models.NewsArticle
		events      []models.Event
		initiatives []models.Initiative
		gallery     []models.GalleryItem
		g           errgroup.Group
	)
	g.Go(func() error {
		items, err := p.res.Hero.List(ctx)
		logSection("hero", err)
		slides = listing.SortSlides(items)
		return nil
	})
	g.Go(func() error {
		items, err := p.res.News.List(ctx)
		logSection("news", err)
		news = listing.Take(items, homeNews)
		return nil
	})
	g.Go(func() error {
		items, err := p.res.Events.List(ctx)
		logSection("events", err)
		events = listing.Upcoming(items, p.now(), homeEvents)
		return nil
	})
	g.Go(func() error {
		items, err := p.res.Initiatives.List(ctx)
		logSection("initiatives", err)
		initiatives = listing.Take(listing.SortInitiatives(items), homeInitiatives)
		return nil
	})
	g.Go(func() error {
		items, err := p.res.Gallery.List(ctx)
		logSection("gallery", err)
		gallery = listing.Take(items, homeGallery)
		return nil
	})
	_ = g.Wait()

	p.renderer.Page(w, r, "public/home", &render.PageData{
		Title:   i18n.T(lang, "hero_name"),
		Section: "home",
		Data: map[string]any{
			"Slides":       slides,
			"News":         news,
			"Events":       events,
			"Initiatives":  initiatives,
			"Gallery":      gallery,
			"Testimonials": []int{1, 2, 3},
		},
	})
}

func logSection(section string, err error) {
	if err != nil {
		slog.Warn("home section unavailable", "section", section, "error", err)
	}
}

// About renders the static biography page.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LangFromCtx(r.Context())
	p.renderer.Page(w, r, "public/about", &render.PageData{
		Title:   i18n.T(lang, "nav_about"),
		Section: "about",
	})
}

// News lists articles filtered by ?q= and ?category=.
func (p *Public) News(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.LangFromCtx(ctx)
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	category := r.URL.Query().Get("category")
	if category == "" {
		category = listing.CategoryAll
	}

	items, err := p.res.News.List(ctx)
	data := map[string]any{
		"Query":      query,
		"Category":   category,
		"Categories": models.Categories,
		"Items":      listing.FilterNews(items, lang, query, category),
	}
	if err != nil {
		slog.Error("list news failed", "error", err)
		data["LoadError"] = i18n.T(lang, "load_error")
	}

	p.renderer.Page(w, r, "public/news", &render.PageData{
		Title:   i18n.T(lang, "news_page_title"),
		Section: "news",
		Data:    data,
	})
}

// NewsDetail renders one article with related articles of the same
// category.
func (p *Public) NewsDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := p.pathID(w, r)
	if !ok {
		return
	}

	var (
		article models.NewsArticle
		all     []models.NewsArticle
		getErr  error
		g       errgroup.Group
	)
	g.Go(func() error {
		article, getErr = p.res.News.Get(ctx, id)
		return nil
	})
	g.Go(func() error {
		var err error
		if all, err = p.res.News.List(ctx); err != nil {
			slog.Warn("load related news failed", "error", err)
		}
		return nil
	})
	_ = g.Wait()

	if getErr != nil {
		p.loadFailed(w, r, "news", getErr)
		return
	}

	p.renderer.Page(w, r, "public/news_detail", &render.PageData{
		Title:   article.Title().Or(middleware.LangFromCtx(ctx)),
		Section: "news",
		Data: map[string]any{
			"Article": article,
			"Related": listing.Related(all, article, relatedNews),
		},
	})
}

// Events lists events matching ?q=.
func (p *Public) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.LangFromCtx(ctx)
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	items, err := p.res.Events.List(ctx)
	data := map[string]any{
		"Query": query,
		"Items": listing.SearchEvents(items, query),
	}
	if err != nil {
		slog.Error("list events failed", "error", err)
		data["LoadError"] = i18n.T(lang, "load_error")
	}

	p.renderer.Page(w, r, "public/events", &render.PageData{
		Title:   i18n.T(lang, "events_page_title"),
		Section: "events",
		Data:    data,
	})
}

// EventDetail renders one event.
func (p *Public) EventDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := p.pathID(w, r)
	if !ok {
		return
	}
	event, err := p.res.Events.Get(r.Context(), id)
	if err != nil {
		p.loadFailed(w, r, "events", err)
		return
	}
	p.renderer.Page(w, r, "public/event_detail", &render.PageData{
		Title:   event.EventName,
		Section: "events",
		Data:    map[string]any{"Event": event},
	})
}

// Initiatives lists initiatives in display order, filtered by ?q=.
func (p *Public) Initiatives(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.LangFromCtx(ctx)
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	items, err := p.res.Initiatives.List(ctx)
	data := map[string]any{
		"Query": query,
		"Items": listing.SearchInitiatives(listing.SortInitiatives(items), lang, query),
	}
	if err != nil {
		slog.Error("list initiatives failed", "error", err)
		data["LoadError"] = i18n.T(lang, "load_error")
	}

	p.renderer.Page(w, r, "public/initiatives", &render.PageData{
		Title:   i18n.T(lang, "initiatives_page_title"),
		Section: "initiatives",
		Data:    data,
	})
}

// Gallery lists photos filtered by ?q=.
func (p *Public) Gallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.LangFromCtx(ctx)
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	items, err := p.res.Gallery.List(ctx)
	data := map[string]any{
		"Query": query,
		"Items": listing.SearchGallery(items, query),
	}
	if err != nil {
		slog.Error("list gallery failed", "error", err)
		data["LoadError"] = i18n.T(lang, "load_error")
	}

	p.renderer.Page(w, r, "public/gallery", &render.PageData{
		Title:   i18n.T(lang, "gallery_page_title"),
		Section: "gallery",
		Data:    data,
	})
}

// Contact renders the empty contact form.
func (p *Public) Contact(w http.ResponseWriter, r *http.Request) {
	p.renderContact(w, r, http.StatusOK, schema.Values{}, nil, "", false)
}

// ContactSubmit validates the form and sends it to the backend. HTMX
// requests get the form block back; plain posts are redirected.
func (p *Public) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := middleware.LangFromCtx(ctx)
	s := schema.Contact

	in := make(schema.Values, len(s.Fields))
	for _, f := range s.Fields {
		in[f.Name] = r.FormValue(f.Name)
	}
	values := s.Normalize(in)
	if errs := s.Validate(values); errs.Any() {
		p.renderContact(w, r, http.StatusUnprocessableEntity, values, errs, "", false)
		return
	}

	err := p.res.SendMessage(ctx, values["name"], values["email"], values["phone"], values["message"])
	if err != nil {
		slog.Error("send contact message failed", "error", err)
		p.renderContact(w, r, http.StatusBadGateway, values, nil, i18n.T(lang, "contact_form_error"), false)
		return
	}

	slog.Info("contact message sent")
	if !render.IsHTMX(r) {
		p.flash.Add(w, r, flash.KindSuccess, i18n.T(lang, "contact_form_success"))
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}
	p.renderContact(w, r, http.StatusOK, schema.Values{}, nil, "", true)
}

func (p *Public) renderContact(w http.ResponseWriter, r *http.Request, status int, values schema.Values, errs schema.Errors, formError string, sent bool) {
	lang := middleware.LangFromCtx(r.Context())

	fields := make([]formField, 0, len(schema.Contact.Fields))
	for _, f := range schema.Contact.Fields {
		fields = append(fields, formField{Field: f, Value: values[f.Name], Error: errs[f.Name]})
	}

	data := &render.PageData{
		Title:   i18n.T(lang, "contact_page_title"),
		Section: "contact",
		Data: map[string]any{
			"Fields":    fields,
			"FormError": formError,
			"Sent":      sent,
		},
	}
	if render.IsHTMX(r) {
		p.renderer.Fragment(w, r, status, "public/contact", "contact-form", data)
		return
	}
	p.renderer.PageStatus(w, r, status, "public/contact", data)
}

// LangToggle switches between English and Hindi and returns to the page
// the visitor came from.
func (p *Public) LangToggle(w http.ResponseWriter, r *http.Request) {
	next := i18n.Toggle(middleware.LangFromCtx(r.Context()))
	middleware.SetLanguageCookie(w, next, p.secure)
	http.Redirect(w, r, localReferer(r), http.StatusSeeOther)
}

// localReferer returns the path of a same-host Referer, or "/".
func localReferer(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}
	if !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	// Drop ?lang= so the toggled choice is not overridden on return.
	q := ref.Query()
	q.Del("lang")
	ref.RawQuery = q.Encode()
	if ref.RawQuery == "" {
		return ref.Path
	}
	return ref.Path + "?" + ref.RawQuery
}

// NotFound renders the translated 404 page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LangFromCtx(r.Context())
	p.renderer.PageStatus(w, r, http.StatusNotFound, "public/not_found", &render.PageData{
		Title: i18n.T(lang, "not_found_title"),
	})
}

func (p *Public) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		p.NotFound(w, r)
		return 0, false
	}
	return id, true
}

// loadFailed renders 404 for a missing record and 502 for any other
// backend failure.
func (p *Public) loadFailed(w http.ResponseWriter, r *http.Request, section string, err error) {
	if api.IsNotFound(err) {
		p.NotFound(w, r)
		return
	}
	slog.Error("load record failed", "section", section, "error", err)
	lang := middleware.LangFromCtx(r.Context())
	p.renderer.PageStatus(w, r, http.StatusBadGateway, "public/not_found", &render.PageData{
		Title:   i18n.T(lang, "not_found_title"),
		Section: section,
		Data:    map[string]any{"Message": i18n.T(lang, "load_error")},
	})
}
