package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ops@example.com", normalizeEmail("  Ops@Example.COM "))
	assert.Equal(t, "", normalizeEmail("   "))
	assert.Equal(t, "a@b.c", normalizeEmail("a@b.c"))
}
