package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/Notifuse/designer/pkg/ratelimiter"
)

// SaveNamespace is the limiter namespace for template writes
const SaveNamespace = "save"

// NewSaveRateLimitMiddleware throttles POST requests per client address.
// Reads and preflights pass through.
func NewSaveRateLimitMiddleware(rl *ratelimiter.RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}
			if !rl.Allow(SaveNamespace, clientAddress(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "Too many save requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientAddress(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
