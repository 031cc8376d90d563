package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/croftwave/storefront/internal/config"
	appErrors "github.com/croftwave/storefront/internal/errors"
	"github.com/croftwave/storefront/internal/utils/response"
	"github.com/redis/go-redis/v9"
)

// RateLimiter enforces a sliding-window limit per client on mutating
// requests, backed by a redis sorted set per client key.
type RateLimiter struct {
	client redis.Cmdable
	cfg    config.RateLimit
	now    func() time.Time
}

func NewRateLimiter(client redis.Cmdable, cfg config.RateLimit) *RateLimiter {
	return &RateLimiter{client: client, cfg: cfg, now: time.Now}
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {

	if !l.cfg.Enabled {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		allowed, err := l.Allow(r)
		if err != nil {
			// Redis being down must not take the API with it.
			slog.Warn("Rate limiter unavailable, letting request through", slog.String("error", err.Error()))
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			response.Error(w, appErrors.TooManyRequestsError("Too many requests, slow down"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Allow records the request and reports whether the client stays within the
// window. Same pipeline shape as a login limiter: trim expired entries, add
// the current hit, count, refresh the key TTL.
func (l *RateLimiter) Allow(r *http.Request) (bool, error) {

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	key := fmt.Sprintf("rate_limit:%s", host)

	now := l.now().UnixNano()
	windowStart := now - l.cfg.WindowSize.Nanoseconds()

	ctx := r.Context()

	pipe := l.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, l.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return count.Val() <= l.cfg.MaxRequests, nil
}
