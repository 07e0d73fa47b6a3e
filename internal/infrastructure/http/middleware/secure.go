package middleware

import (
	"net/http"

	"github.com/unrolled/secure"
)

// SecureOptions returns secure.Options for a JSON-only API: responses are
// never rendered as pages, so scripts, framing, and referrers are shut off
// entirely. HSTS is active outside development, where TLS terminates ahead
// of this process.
func SecureOptions(isDevelopment bool) secure.Options {
	return secure.Options{
		IsDevelopment:         isDevelopment,
		ContentTypeNosniff:    true,
		FrameDeny:             true,
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
		ReferrerPolicy:        "no-referrer",
		STSSeconds:            31536000,
		STSIncludeSubdomains:  true,
	}
}

// NewSecure returns a middleware that adds security headers.
func NewSecure(opts secure.Options) func(next http.Handler) http.Handler {
	s := secure.New(opts)
	return s.Handler
}
