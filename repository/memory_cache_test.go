package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheGetSet(t *testing.T) {
	cache := NewMemoryCache()

	_, ok := cache.Get("quote:cat-1:37.6:20:5")
	assert.False(t, ok)

	require.NoError(t, cache.Set("quote:cat-1:37.6:20:5", "R$ 206,80"))

	val, ok := cache.Get("quote:cat-1:37.6:20:5")
	assert.True(t, ok)
	assert.Equal(t, "R$ 206,80", val)
}
