package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Validation, KindOf(New(Validation, "name is required")))
	assert.Equal(t, NotFound, KindOf(New(NotFound, "no such product")))
	assert.Equal(t, Persistence, KindOf(errors.New("plain error")))
}

func TestKindOfWrapped(t *testing.T) {
	inner := New(Conflict, "slug already exists")
	outer := fmt.Errorf("create category: %w", inner)
	assert.Equal(t, Conflict, KindOf(outer))
	assert.True(t, Is(outer, Conflict))
	assert.False(t, Is(outer, Validation))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Persistence, "insert product", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "insert product")
}
