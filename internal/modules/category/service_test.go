package category

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/promostack/storefront-core/internal/pkg/apperr"
)

func TestDuplicateCheck(t *testing.T) {
	assert.NoError(t, duplicateCheck(0, nil))

	err := duplicateCheck(1, nil)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	// A failed lookup must not read as "no duplicate".
	err = duplicateCheck(0, errors.New("connection refused"))
	assert.Error(t, err)
	assert.Equal(t, apperr.Persistence, apperr.KindOf(err))
}
