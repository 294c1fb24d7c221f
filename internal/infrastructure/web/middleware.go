package web

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type loggerKey struct{}

// withLogger stores the base logger so helpers can enrich it per request.
func withLogger(base zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := base.WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// loggerWithRequest returns the request logger with correlation fields.
func loggerWithRequest(r *http.Request) *zerolog.Logger {
	logger := zerolog.Ctx(r.Context()).With().
		Str("request_id", GetRequestID(r)).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Logger()
	return &logger
}

// requestLogger logs each completed request with status and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		if r.URL.Path == "/health" {
			return
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		loggerWithRequest(r).Info().
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Msg("Request completed")
	})
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limits   map[string]*clientLimiter
	rate     rate.Limit
	capacity int
	now      func() time.Time
}

// clientLimiter is the bucket of a single IP and when it was last used.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter returns nil when requestsPerSecond is not positive, which disables limiting.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limits:   make(map[string]*clientLimiter),
		rate:     rate.Limit(requestsPerSecond),
		capacity: burst,
		now:      time.Now,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.limits[ip]
	if !exists {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.capacity)}
		rl.limits[ip] = entry
	}
	entry.lastSeen = rl.now()
	return entry.limiter
}

// Prune forgets clients not seen since cutoff and reports how many were dropped.
func (rl *RateLimiter) Prune(cutoff time.Time) int {
	if rl == nil {
		return 0
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, entry := range rl.limits {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limits, ip)
			removed++
		}
	}
	return removed
}

// Len reports how many clients are tracked.
func (rl *RateLimiter) Len() int {
	if rl == nil {
		return 0
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limits)
}

// Middleware rejects requests once the client's bucket is empty.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	if rl == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.getLimiter(clientIP(r)).Allow() {
			w.Header().Set("Retry-After", "1")
			WriteErrorMessage(w, r, "Too many requests", http.StatusTooManyRequests, ErrCodeRateLimit)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP keys the limiter on RemoteAddr: the socket peer, or the forwarded
// address when RealIP is mounted for a trusted proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}
