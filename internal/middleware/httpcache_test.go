package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipCachePath(t *testing.T) {
	patterns := []string{"/api/v1/setup", "/api/v1/admin/*", " ", ""}

	assert.True(t, skipCachePath("/api/v1/setup", patterns))
	assert.True(t, skipCachePath("/api/v1/admin/dashboard", patterns))
	assert.True(t, skipCachePath("/api/v1/admin/", patterns))
	assert.False(t, skipCachePath("/api/v1/products", patterns))
	assert.False(t, skipCachePath("/api/v1/setup/extra", patterns))
}

func TestCacheBodyWriterOverflow(t *testing.T) {
	w := &cacheBodyWriter{}
	w.capture(make([]byte, cacheMaxBody))
	assert.False(t, w.overflow)

	w.capture([]byte("x"))
	assert.True(t, w.overflow)
}
