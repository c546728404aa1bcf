package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmails(t *testing.T) {
	got := NormalizeEmails([]string{" Owner@Example.COM ", "", "owner@example.com", "second@example.com"})
	assert.Equal(t, []string{"owner@example.com", "second@example.com"}, got)
}

func TestContainsEmail(t *testing.T) {
	list := NormalizeEmails([]string{"owner@example.com"})
	assert.True(t, ContainsEmail(list, "OWNER@example.com "))
	assert.False(t, ContainsEmail(list, "visitor@example.com"))
	assert.False(t, ContainsEmail(nil, "owner@example.com"))
}
