package security

import (
	"net/http"

	"github.com/withgalaxy/tsxkit/pkg/config"
)

// BodyLimit caps request bodies at cfg.MaxBytes. Reads past the limit fail
// and the handler is expected to answer 413.
func BodyLimit(cfg config.BodyLimitConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled || cfg.MaxBytes <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
