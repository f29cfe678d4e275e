// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"sonchiraiya/internal/api"
	"sonchiraiya/internal/flash"
	"sonchiraiya/internal/middleware"
	"sonchiraiya/internal/render"
	"sonchiraiya/internal/session"
)

// Auth groups the admin login and logout handlers. Credentials are
// checked by the content backend; the session lives in Valkey.
type Auth struct {
	renderer *render.Renderer
	client   *api.Client
	sessions *session.Store
	flash    *flash.Store
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, client *api.Client, sessions *session.Store, fl *flash.Store) *Auth {
	return &Auth{
		renderer: renderer,
		client:   client,
		sessions: sessions,
		flash:    fl,
	}
}

// LoginPage renders the login form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromCtx(r.Context()) != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	a.renderLogin(w, r, http.StatusOK, "", "")
}

// LoginSubmit checks the credentials with the backend and starts a
// session.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		a.renderLogin(w, r, http.StatusBadRequest, username, "Username and password are required.")
		return
	}

	res, err := a.client.Login(ctx, username, password)
	if err != nil {
		slog.Error("login request failed", "error", err)
		a.renderLogin(w, r, http.StatusBadGateway, username, api.Message(err))
		return
	}
	if !res.Success {
		slog.Warn("login rejected", "username", username, "remote", r.RemoteAddr)
		a.renderLogin(w, r, http.StatusUnauthorized, username, res.Message)
		return
	}

	if _, err := a.sessions.Create(ctx, w, username); err != nil {
		slog.Error("session create failed", "error", err)
		a.renderLogin(w, r, http.StatusInternalServerError, username, "Could not start a session. Please try again.")
		return
	}

	slog.Info("admin logged in", "username", username)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// LoginLimited answers login attempts rejected by the rate limiter.
func (a *Auth) LoginLimited(w http.ResponseWriter, r *http.Request) {
	a.renderLogin(w, r, http.StatusTooManyRequests, r.FormValue("username"),
		"Too many login attempts. Please wait a minute and try again.")
}

// Logout destroys the session and returns to the login page.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	a.flash.Add(w, r, flash.KindInfo, "You have been signed out.")
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

func (a *Auth) renderLogin(w http.ResponseWriter, r *http.Request, status int, username, msg string) {
	a.renderer.PageStatus(w, r, status, "admin/login", &render.PageData{
		Title: "Sign In",
		Data: map[string]any{
			"Username": username,
			"Error":    msg,
		},
	})
}
