// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sonchiraiya/internal/session"
)

// stubLoader answers Get with a fixed result.
type stubLoader struct {
	data *session.Data
	err  error
}

func (s stubLoader) Get(context.Context, *http.Request) (*session.Data, error) {
	return s.data, s.err
}

// okHandler is a simple handler that records whether it was invoked.
func okHandler() (http.Handler, *bool) {
	var called bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	return h, &called
}

func newTestSession() *session.Data {
	now := time.Now().UTC()
	return &session.Data{Username: "editor", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
}

// ---------- SessionFromCtx ----------

func TestSessionFromCtx(t *testing.T) {
	t.Run("returns session when present", func(t *testing.T) {
		sess := newTestSession()
		got := SessionFromCtx(WithSession(context.Background(), sess))
		if got != sess {
			t.Errorf("got %p, want %p", got, sess)
		}
	})

	t.Run("returns nil when absent", func(t *testing.T) {
		if got := SessionFromCtx(context.Background()); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("returns nil for wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), SessionKey, "not-a-session")
		if got := SessionFromCtx(ctx); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})
}

// ---------- LoadSession ----------

func TestLoadSession(t *testing.T) {
	t.Run("stores session in context", func(t *testing.T) {
		sess := newTestSession()
		var seen *session.Data
		h := LoadSession(stubLoader{data: sess})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = SessionFromCtx(r.Context())
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin", nil))

		if seen == nil || seen.Username != "editor" {
			t.Errorf("session not loaded: %+v", seen)
		}
	})

	t.Run("store error reads as logged out", func(t *testing.T) {
		var reached bool
		var seen *session.Data
		h := LoadSession(stubLoader{err: errors.New("valkey down")})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			seen = SessionFromCtx(r.Context())
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin", nil))

		if !reached {
			t.Fatal("next handler should run on store error")
		}
		if seen != nil {
			t.Errorf("expected no session, got %+v", seen)
		}
	})
}

// ---------- RequireAuth ----------

func TestRequireAuth(t *testing.T) {
	t.Run("redirects without session", func(t *testing.T) {
		next, called := okHandler()
		rr := httptest.NewRecorder()
		RequireAuth(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/news", nil))

		if *called {
			t.Error("next handler should not run")
		}
		if rr.Code != http.StatusSeeOther {
			t.Errorf("status: got %d, want 303", rr.Code)
		}
		if loc := rr.Header().Get("Location"); loc != "/admin/login" {
			t.Errorf("Location: got %q", loc)
		}
	})

	t.Run("htmx request gets HX-Redirect", func(t *testing.T) {
		next, called := okHandler()
		req := httptest.NewRequest(http.MethodPost, "/admin/news", nil)
		req.Header.Set("HX-Request", "true")
		rr := httptest.NewRecorder()
		RequireAuth(next).ServeHTTP(rr, req)

		if *called {
			t.Error("next handler should not run")
		}
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want 401", rr.Code)
		}
		if got := rr.Header().Get("HX-Redirect"); got != "/admin/login" {
			t.Errorf("HX-Redirect: got %q", got)
		}
	})

	t.Run("passes with session", func(t *testing.T) {
		next, called := okHandler()
		req := httptest.NewRequest(http.MethodGet, "/admin/news", nil)
		req = req.WithContext(WithSession(req.Context(), newTestSession()))
		rr := httptest.NewRecorder()
		RequireAuth(next).ServeHTTP(rr, req)

		if !*called {
			t.Error("next handler should run")
		}
		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
	})
}
