package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/kknudson15/ai-portfolio-starter/internal/api"
	"golang.org/x/time/rate"
)

const (
	throttleCleanupInterval = 5 * time.Minute
	throttleStaleThreshold  = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Throttle rate-limits requests per client IP using a token bucket.
// This is transport-level abuse protection, independent of the
// per-session message cap enforced by the ask service.
type Throttle struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	limit       rate.Limit
	burst       int
	lastCleanup time.Time
}

// NewThrottle creates a throttle refilling rps tokens per second with
// the given burst size.
func NewThrottle(rps float64, burst int) *Throttle {
	return &Throttle{
		visitors:    make(map[string]*visitor),
		limit:       rate.Limit(rps),
		burst:       burst,
		lastCleanup: time.Now(),
	}
}

func (t *Throttle) allow(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()

	// Stale entries are swept inline instead of by a background goroutine
	if now.Sub(t.lastCleanup) > throttleCleanupInterval {
		for k, v := range t.visitors {
			if now.Sub(v.lastSeen) > throttleStaleThreshold {
				delete(t.visitors, k)
			}
		}
		t.lastCleanup = now
	}

	v, exists := t.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(t.limit, t.burst)
		t.visitors[ip] = &visitor{limiter: limiter, lastSeen: now}
		return limiter.Allow()
	}

	v.lastSeen = now
	return v.limiter.Allow()
}

// Handler returns middleware enforcing the throttle.
func (t *Throttle) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !t.allow(ClientIP(r)) {
			w.Header().Set("Retry-After", "1")
			api.Error(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
