package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestGetLimiterReturnsSameInstancePerDevice(t *testing.T) {
	store := NewRateLimiterStore(rate.Limit(10), 5)

	a := store.GetLimiter("dev-a")
	b := store.GetLimiter("dev-b")

	assert.Same(t, a, store.GetLimiter("dev-a"))
	assert.NotSame(t, a, b)
	assert.Equal(t, rate.Limit(10), a.Limit())
	assert.Equal(t, 5, a.Burst())
}

func TestSetLimiterOverridesDefault(t *testing.T) {
	store := NewRateLimiterStore(rate.Limit(10), 5)

	store.SetLimiter("dev-a", rate.Limit(1), 1)
	limiter := store.GetLimiter("dev-a")

	assert.Equal(t, rate.Limit(1), limiter.Limit())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())
}
