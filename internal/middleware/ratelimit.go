package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jekabolt/sales-panel/internal/ratelimit"
)

// RateLimit rejects requests from an IP that spent its budget of the given kind.
// ClientIdentifier must run first.
func RateLimit(l *ratelimit.MultiKeyLimiter, kind ratelimit.Kind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := GetClientIP(r.Context())
			if err := l.Check(kind, ip); err != nil {
				slog.Default().WarnContext(r.Context(), "rate limited",
					slog.String("ip", ip),
					slog.String("kind", string(kind)),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
