// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// Sonchiraiya server. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"sonchiraiya/internal/handlers"
	"sonchiraiya/internal/metrics"
	"sonchiraiya/internal/middleware"
	"sonchiraiya/internal/session"
	"sonchiraiya/web"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// Deps holds everything the router wires together.
type Deps struct {
	Admin        *handlers.Admin
	Auth         *handlers.Auth
	Public       *handlers.Public
	Sessions     *session.Store
	LoginLimiter *middleware.RateLimiter
	Metrics      *metrics.Metrics

	// Checks are run by /health, keyed by dependency name.
	Checks map[string]HealthCheck

	// APIBaseURL is allowed as an image source in the CSP.
	APIBaseURL string
	// Secure marks cookies HTTPS-only.
	Secure bool
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(d.Metrics.Middleware)
	r.Use(middleware.SecureHeaders(d.APIBaseURL))
	r.Use(middleware.Language(d.Secure))
	r.Use(middleware.NewCSRF(d.Secure))

	r.Get("/health", healthHandler(d.Checks))
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		// Only possible if the embed directive changes.
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.LoadSession(d.Sessions))

		// Auth pages, accessible without a session.
		r.Get("/login", d.Auth.LoginPage)
		r.With(d.LoginLimiter.Middleware).Post("/login", d.Auth.LoginSubmit)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Post("/logout", d.Auth.Logout)
			r.Get("/", d.Admin.Dashboard)

			// Every resource shares the same generic handlers.
			r.Route("/{resource}", func(r chi.Router) {
				r.Get("/", d.Admin.List)
				r.Post("/", d.Admin.Create)
				r.Get("/new", d.Admin.New)
				r.Post("/slug", d.Admin.SuggestSlug)
				r.Get("/{id}/edit", d.Admin.Edit)
				r.Put("/{id}", d.Admin.Update)
				r.Delete("/{id}", d.Admin.Delete)

				// Fallbacks for forms submitted without JavaScript.
				r.Post("/{id}", d.Admin.Update)
				r.Post("/{id}/delete", d.Admin.Delete)
			})
		})
	})

	// Public site.
	r.Get("/", d.Public.Home)
	r.Get("/about", d.Public.About)
	r.Get("/news", d.Public.News)
	r.Get("/news/{id}", d.Public.NewsDetail)
	r.Get("/events", d.Public.Events)
	r.Get("/events/{id}", d.Public.EventDetail)
	r.Get("/initiatives", d.Public.Initiatives)
	r.Get("/gallery", d.Public.Gallery)
	r.Get("/contact", d.Public.Contact)
	r.Post("/contact", d.Public.ContactSubmit)
	r.Post("/lang/toggle", d.Public.LangToggle)
	r.NotFound(d.Public.NotFound)

	return r
}

// healthHandler runs every check and reports 503 if any fails.
func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		body := map[string]string{"status": "ok"}
		status := http.StatusOK
		for name, check := range checks {
			if err := check(ctx); err != nil {
				slog.Warn("health check failed", "dependency", name, "error", err)
				body[name] = "unavailable"
				body["status"] = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			body[name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(body); err != nil {
			slog.Debug("write health response", "error", err)
		}
	}
}
