package landing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsMissingPage(t *testing.T) {
	// A slug handed to an ID lookup makes Postgres reject the uuid cast;
	// that must read as a missing page, never a server failure.
	uuidErr := errors.New(`ERROR: invalid input syntax for type uuid: "my-page-slug" (SQLSTATE 22P02)`)
	assert.True(t, isMissingPage(uuidErr))
	assert.True(t, isMissingPage(fmt.Errorf("load page: %w", gorm.ErrRecordNotFound)))

	assert.False(t, isMissingPage(nil))
	assert.False(t, isMissingPage(errors.New("connection refused")))
}
