// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders adds security headers to every response. The API serves
// JSON and downloadable artifacts, never renderable pages, so the policy
// can be maximally restrictive: nothing here is ever a script source or a
// frame target. Compiled layout bundles carry no policy of their own; they
// are downloads, rendered only after the client unpacks them elsewhere.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Responses must be interpreted exactly as the declared type —
		// uploads and exports make sniffing particularly unwelcome here.
		h.Set("X-Content-Type-Options", "nosniff")

		// An API response has no business inside a frame.
		h.Set("X-Frame-Options", "DENY")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		// Disable the legacy XSS filter (CSP above supersedes it).
		h.Set("X-XSS-Protection", "0")

		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "interest-cohort=()")

		next.ServeHTTP(w, r)
	})
}
