package http

import (
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/beyond-catalog/internal/logger"
)

// secretQueryParams never reach the access log.
var secretQueryParams = []string{"password", accessTokenHeader}

// withLogging writes one access log line per request.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", loggableURI(r.URL)).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

// loggableURI returns the path and query with secret parameter values
// replaced by "REDACTED".
func loggableURI(u *url.URL) string {
	if u.RawQuery == "" {
		return u.Path
	}

	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return u.Path
	}
	for _, key := range secretQueryParams {
		if query.Has(key) {
			query.Set(key, "REDACTED")
		}
	}

	return u.Path + "?" + query.Encode()
}
