package server

import "net/http"

// SecurityConfig controls the hardening headers and CORS behavior applied to
// every endpoint.
type SecurityConfig struct {
	EnableCORS     bool
	AllowedOrigins []string
	AllowedMethods []string
}

// DefaultSecurityConfig returns the configuration used unless overridden:
// CORS enabled for any origin, GET and OPTIONS only.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// originAllowed reports whether the request origin matches the allow list.
func (c SecurityConfig) originAllowed(origin string) (string, bool) {
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" {
			return "*", true
		}
		if allowed == origin {
			return origin, true
		}
	}
	return "", false
}

// SecurityMiddleware wraps next with the standard hardening headers and,
// when enabled, CORS handling. OPTIONS preflight requests are answered
// directly with 204.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin, ok := config.originAllowed(r.Header.Get("Origin")); ok {
				h.Set("Access-Control-Allow-Origin", origin)
				methods := ""
				for i, m := range config.AllowedMethods {
					if i > 0 {
						methods += ", "
					}
					methods += m
				}
				h.Set("Access-Control-Allow-Methods", methods)
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}
