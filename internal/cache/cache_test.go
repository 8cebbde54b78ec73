package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/folio-dev/folio/internal/anim"
)

func TestExpiry(t *testing.T) {
	clock := anim.NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c := New[int](clock)

	c.Set("a", 1, 10*time.Minute)
	c.Set("b", 2, 0)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	clock.Advance(DefaultTTL)
	_, ok = c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	clock.Advance(5 * time.Minute)
	_, ok = c.Get("a")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "mood_analysis:5d41402abc4b2a76b9719d911017c592", Key("mood_analysis", "hello"))
	assert.NotEqual(t, Key("a", "x"), Key("b", "x"))
}
