// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"sonchiraiya/internal/i18n"
)

func TestLanguage(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		cookie     string
		accept     string
		want       i18n.Language
		wantCookie bool
	}{
		{name: "default", target: "/", want: i18n.English},
		{name: "cookie", target: "/", cookie: "hi", want: i18n.Hindi},
		{name: "accept-language", target: "/", accept: "hi-IN,hi;q=0.9", want: i18n.Hindi},
		{name: "cookie beats header", target: "/", cookie: "en", accept: "hi", want: i18n.English},
		{name: "query persists", target: "/news?lang=hi", cookie: "en", want: i18n.Hindi, wantCookie: true},
		{name: "unknown query falls back", target: "/?lang=fr", want: i18n.English, wantCookie: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got i18n.Language
			handler := Language(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = LangFromCtx(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.want, got)

			var set *http.Cookie
			for _, c := range rr.Result().Cookies() {
				if c.Name == LangCookieName {
					set = c
				}
			}
			if tt.wantCookie {
				if assert.NotNil(t, set) {
					assert.Equal(t, string(tt.want), set.Value)
					assert.Zero(t, set.MaxAge, "language cookie must be session-scoped")
				}
			} else {
				assert.Nil(t, set)
			}
		})
	}
}

func TestLangFromCtxDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, i18n.Default, LangFromCtx(req.Context()))
}
