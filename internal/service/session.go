package service

import (
	"sync"

	"github.com/kknudson15/ai-portfolio-starter/internal/domain"
)

// DefaultSessionLimit is the number of questions a single chat session
// may ask before being rejected.
const DefaultSessionLimit = 10

// SessionLimiter caps accepted questions per conversation session.
// Sessions are created lazily on first use and live for the process
// lifetime; there is no eviction, so memory grows with the number of
// distinct session ids seen.
type SessionLimiter struct {
	mu       sync.Mutex
	limit    int
	sessions map[string]int
}

// NewSessionLimiter creates a limiter with the given per-session cap.
// A non-positive limit falls back to DefaultSessionLimit.
func NewSessionLimiter(limit int) *SessionLimiter {
	if limit <= 0 {
		limit = DefaultSessionLimit
	}
	return &SessionLimiter{
		limit:    limit,
		sessions: make(map[string]int),
	}
}

// CheckAndIncrement accepts one question for the session, creating the
// session on first use. At the cap it returns ErrSessionLimitReached
// without incrementing, so the count never exceeds the limit.
func (l *SessionLimiter) CheckAndIncrement(sessionID string) error {
	if sessionID == "" {
		return domain.ErrMissingSessionID
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sessions[sessionID] >= l.limit {
		return domain.ErrSessionLimitReached
	}

	l.sessions[sessionID]++
	return nil
}

// Count returns the number of accepted questions for the session.
func (l *SessionLimiter) Count(sessionID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sessions[sessionID]
}
