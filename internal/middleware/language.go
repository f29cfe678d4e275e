// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"sonchiraiya/internal/i18n"
)

// LangCookieName holds the visitor's language for the browser session.
const LangCookieName = "sc_lang"

const langKey contextKey = "lang"

// Language resolves the active language once per request: a ?lang= query
// parameter wins and is persisted, then the sc_lang cookie, then the
// Accept-Language header, then English.
func Language(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var lang i18n.Language
			if q := r.URL.Query().Get("lang"); q != "" {
				lang = i18n.Parse(q)
				SetLanguageCookie(w, lang, secure)
			} else if c, err := r.Cookie(LangCookieName); err == nil && c.Value != "" {
				lang = i18n.Parse(c.Value)
			} else {
				lang = i18n.Parse(r.Header.Get("Accept-Language"))
			}

			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}

// SetLanguageCookie stores lang without Max-Age, so the choice lasts until
// the browser session ends.
func SetLanguageCookie(w http.ResponseWriter, lang i18n.Language, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    string(lang),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// WithLang returns a copy of ctx carrying lang.
func WithLang(ctx context.Context, lang i18n.Language) context.Context {
	return context.WithValue(ctx, langKey, lang)
}

// LangFromCtx returns the request language, or the default when none was
// resolved.
func LangFromCtx(ctx context.Context) i18n.Language {
	if lang, ok := ctx.Value(langKey).(i18n.Language); ok {
		return lang
	}
	return i18n.Default
}
