package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// newTestLimiter returns a limiter with a controllable clock.
func newTestLimiter(start time.Time) (*MemoryLimiter, *time.Time) {
	clock := start
	l := NewMemoryLimiter()
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestAllow_UnderLimit(t *testing.T) {
	l, _ := newTestLimiter(time.Unix(0, 0))

	for i := 0; i < 10; i++ {
		assert.True(t, l.Allow("ip:sessions", 10, time.Minute), "request %d", i+1)
	}
}

func TestAllow_EleventhSessionRequestRejected(t *testing.T) {
	l, _ := newTestLimiter(time.Unix(0, 0))

	for i := 0; i < 10; i++ {
		l.Allow("ip:sessions", 10, time.Minute)
	}
	assert.False(t, l.Allow("ip:sessions", 10, time.Minute))
}

func TestAllow_SixtyFirstMessageRejected(t *testing.T) {
	l, _ := newTestLimiter(time.Unix(0, 0))

	for i := 0; i < 60; i++ {
		assert.True(t, l.Allow("ip:messages", 60, time.Minute), "request %d", i+1)
	}
	assert.False(t, l.Allow("ip:messages", 60, time.Minute))
}

func TestAllow_WindowSlides(t *testing.T) {
	l, clock := newTestLimiter(time.Unix(0, 0))

	for i := 0; i < 10; i++ {
		l.Allow("k", 10, time.Minute)
	}
	assert.False(t, l.Allow("k", 10, time.Minute))

	*clock = clock.Add(61 * time.Second)
	assert.True(t, l.Allow("k", 10, time.Minute))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(time.Unix(0, 0))

	for i := 0; i < 10; i++ {
		l.Allow("a:sessions", 10, time.Minute)
	}
	assert.False(t, l.Allow("a:sessions", 10, time.Minute))
	assert.True(t, l.Allow("b:sessions", 10, time.Minute))
	assert.True(t, l.Allow("a:messages", 60, time.Minute))
}

func TestAllow_RejectedRequestDoesNotConsume(t *testing.T) {
	l, clock := newTestLimiter(time.Unix(0, 0))

	for i := 0; i < 10; i++ {
		l.Allow("k", 10, time.Minute)
	}
	// Hammering while limited must not extend the block past the
	// original window.
	for i := 0; i < 100; i++ {
		*clock = clock.Add(100 * time.Millisecond)
		assert.False(t, l.Allow("k", 10, time.Minute))
	}

	*clock = clock.Add(time.Minute)
	assert.True(t, l.Allow("k", 10, time.Minute))
}
