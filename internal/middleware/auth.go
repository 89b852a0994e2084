package middleware

import (
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/config"
)

// APIKeyHeader carries the API key, as the mobile client sends it
const APIKeyHeader = "api_key"

// APIKeyAuth middleware validates the API key header.
// With no keys configured every request passes, like a bare json-server.
func APIKeyAuth(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	valid := make(map[string]bool, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		if key != "" {
			valid[key] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(valid) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get(APIKeyHeader)
			if apiKey == "" {
				http.Error(w, "Unauthorized: API key required", http.StatusUnauthorized)
				return
			}

			if !valid[apiKey] {
				http.Error(w, "Forbidden: Invalid API key", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
