package service

import (
	"sync"
	"testing"

	"github.com/kknudson15/ai-portfolio-starter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLimiter_Boundary(t *testing.T) {
	limiter := NewSessionLimiter(10)

	for i := 0; i < 10; i++ {
		require.NoError(t, limiter.CheckAndIncrement("session-1"), "message %d should be accepted", i+1)
	}

	err := limiter.CheckAndIncrement("session-1")
	assert.Equal(t, domain.ErrSessionLimitReached, err)
	assert.Equal(t, 10, limiter.Count("session-1"), "count must not exceed the limit")

	// Rejections keep not incrementing
	assert.Equal(t, domain.ErrSessionLimitReached, limiter.CheckAndIncrement("session-1"))
	assert.Equal(t, 10, limiter.Count("session-1"))
}

func TestSessionLimiter_MissingSessionID(t *testing.T) {
	limiter := NewSessionLimiter(10)

	err := limiter.CheckAndIncrement("")
	assert.Equal(t, domain.ErrMissingSessionID, err)
}

func TestSessionLimiter_SessionIsolation(t *testing.T) {
	limiter := NewSessionLimiter(10)

	for i := 0; i < 10; i++ {
		require.NoError(t, limiter.CheckAndIncrement("session-a"))
	}
	assert.Equal(t, domain.ErrSessionLimitReached, limiter.CheckAndIncrement("session-a"))

	// A fresh session gets its own full allowance
	assert.NoError(t, limiter.CheckAndIncrement("session-b"))
	assert.Equal(t, 1, limiter.Count("session-b"))
}

func TestSessionLimiter_DefaultLimit(t *testing.T) {
	limiter := NewSessionLimiter(0)

	for i := 0; i < DefaultSessionLimit; i++ {
		require.NoError(t, limiter.CheckAndIncrement("s"))
	}
	assert.Equal(t, domain.ErrSessionLimitReached, limiter.CheckAndIncrement("s"))
}

func TestSessionLimiter_ConcurrentIncrements(t *testing.T) {
	limiter := NewSessionLimiter(10)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = limiter.CheckAndIncrement("shared")
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, limiter.Count("shared"))
}
