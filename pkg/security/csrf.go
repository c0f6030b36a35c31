package security

import (
	"log"
	"net/http"

	"github.com/withgalaxy/tsxkit/pkg/config"
)

// CSRF rejects unsafe requests whose origin is neither loopback nor listed
// in cfg.AllowOrigins. The studio API takes JSON, so unlike a form handler
// every unsafe method is checked whatever its content type.
func CSRF(cfg config.CSRFConfig) func(http.Handler) http.Handler {
	allowed := GetAllowedOrigins("", cfg.AllowOrigins)

	return func(next http.Handler) http.Handler {
		if !cfg.CheckOrigin {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			origin := GetOriginFromRequest(r)
			if origin == "" {
				http.Error(w, "Forbidden: Origin header required", http.StatusForbidden)
				return
			}

			if !IsLocalhost(origin) && !allowed[origin] {
				log.Printf("rejected %s %s from origin %s", r.Method, r.URL.Path, origin)
				http.Error(w, "Forbidden: Origin not allowed", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isSafeMethod(method string) bool {
	return method == http.MethodGet ||
		method == http.MethodHead ||
		method == http.MethodOptions
}
