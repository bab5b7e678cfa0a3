package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetSet(t *testing.T) {
	c := New(time.Hour)

	_, ok := c.Get(Key("config"))
	assert.False(t, ok)

	c.Set(Key("config"), "value")

	got, ok := c.Get(Key("config"))
	assert.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestCache_KeyFingerprint(t *testing.T) {
	assert.Equal(t, "events", Key("events"))
	assert.Equal(t, "events|site_a", Key("events", "site_a"))
	assert.NotEqual(t, Key("events", "site_a"), Key("events", "site_b"))
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New(time.Hour)

	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Set("events|site_a", 42)

	got, ok := c.Get("events|site_a")
	assert.True(t, ok)
	assert.Equal(t, 42, got)

	// Within the TTL the entry survives
	current = current.Add(59 * time.Minute)
	_, ok = c.Get("events|site_a")
	assert.True(t, ok)

	// Past the TTL it is gone
	current = current.Add(2 * time.Minute)
	_, ok = c.Get("events|site_a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_InvalidateAll(t *testing.T) {
	c := New(time.Hour)

	c.Set("config", 1)
	c.Set("events|site_a", 2)
	c.Set("billing", 3)
	assert.Equal(t, 3, c.Len())

	c.InvalidateAll()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("config")
	assert.False(t, ok)
}
