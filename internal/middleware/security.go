// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// assetOrigin serves htmx to both layouts.
const assetOrigin = "https://unpkg.com"

// SecureHeaders returns middleware adding security headers to every
// response. apiBaseURL is the content backend; its origin is allowed as
// an image source because uploads are served from there.
func SecureHeaders(apiBaseURL string) func(http.Handler) http.Handler {
	imgSrc := []string{"'self'", "data:", "blob:", "https:"}
	if u, err := url.Parse(apiBaseURL); err == nil && u.Scheme == "http" && u.Host != "" {
		// Plain-http backends (local development) are not covered by https:.
		imgSrc = append(imgSrc, u.Scheme+"://"+u.Host)
	}

	csp := strings.Join([]string{
		"default-src 'self'",
		"script-src 'self' " + assetOrigin,
		"style-src 'self' 'unsafe-inline'",
		"img-src " + strings.Join(imgSrc, " "),
		"frame-ancestors 'self'",
		"form-action 'self'",
	}, "; ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()

			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "SAMEORIGIN")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Content-Security-Policy", csp)

			next.ServeHTTP(w, r)
		})
	}
}
