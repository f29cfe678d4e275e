// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package flash carries one-shot toast messages across a redirect in a
// signed cookie.
package flash

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

const cookieName = "sc_flash"

// Kinds of toast.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
)

// Message is one toast.
type Message struct {
	Kind string
	Text string
}

func init() {
	gob.Register(Message{})
}

// Store reads and writes flash messages.
type Store struct {
	cookies *sessions.CookieStore
}

// New creates a Store signing cookies with secret. The cookie has no
// Max-Age, so it dies with the browser session.
func New(secret []byte, secure bool) *Store {
	cs := sessions.NewCookieStore(secret)
	cs.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cs}
}

// Add queues a message for the next page render.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, kind, text string) {
	sess, err := s.cookies.Get(r, cookieName)
	if err != nil {
		// A cookie signed with an old secret decodes as a fresh session.
		slog.Debug("flash cookie reset", "error", err)
	}
	sess.AddFlash(Message{Kind: kind, Text: text})
	if err := sess.Save(r, w); err != nil {
		slog.Warn("flash save failed", "error", err)
	}
}

// Pop returns and clears pending messages. It writes a cookie, so it must
// run before the response body.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) []Message {
	if _, err := r.Cookie(cookieName); err != nil {
		return nil
	}
	sess, err := s.cookies.Get(r, cookieName)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		slog.Warn("flash clear failed", "error", err)
	}

	out := make([]Message, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(Message); ok {
			out = append(out, m)
		}
	}
	return out
}
