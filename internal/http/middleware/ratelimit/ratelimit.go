// Package ratelimit throttles requests per client IP. Limits are kept either
// in process memory or in Redis when several instances share the budget.
package ratelimit

import (
	"context"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	resp "contacts/internal/lib/api/response"
	"contacts/internal/lib/logger/sl"
)

// Limiter reports whether one more request under key is allowed. When it is
// not, retryAfter tells how long the client should wait.
type Limiter interface {
	Allow(ctx context.Context, key string) (ok bool, retryAfter time.Duration, err error)
}

// New rejects requests over the limit with 429. Limiter failures are logged
// and the request is let through.
func New(log *slog.Logger, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.ratelimit"

			ip := ClientIP(r)

			ok, retryAfter, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				log.Error("Rate limiter failed", slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())), sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			if !ok {
				log.Warn("Rate limit exceeded", slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())), slog.String("ip", ip))

				w.Header().Set("Retry-After", strconv.Itoa(seconds(retryAfter)))
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, resp.Error("Too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

// ClientIP is the host of the connection address. Forwarded headers are
// ignored here; behind a trusted proxy middleware.RealIP rewrites
// RemoteAddr before this runs.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}

	return r.RemoteAddr
}

func seconds(d time.Duration) int {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		return 1
	}

	return s
}
