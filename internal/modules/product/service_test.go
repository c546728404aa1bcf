package product

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterUpdateErr(t *testing.T) {
	assert.NoError(t, counterUpdateErr(1, nil))

	// Zero rows means the product does not exist; the click event must
	// roll back with it instead of landing as an orphan.
	assert.ErrorIs(t, counterUpdateErr(0, nil), errUnknownProduct)

	dbErr := errors.New("connection refused")
	assert.ErrorIs(t, counterUpdateErr(0, dbErr), dbErr)
}
