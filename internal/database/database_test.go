package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUUIDSyntaxErr(t *testing.T) {
	pgErr := errors.New(`ERROR: invalid input syntax for type uuid: "my-page-slug" (SQLSTATE 22P02)`)
	assert.True(t, IsUUIDSyntaxErr(pgErr))

	assert.False(t, IsUUIDSyntaxErr(nil))
	assert.False(t, IsUUIDSyntaxErr(gorm.ErrRecordNotFound))
	assert.False(t, IsUUIDSyntaxErr(errors.New("connection refused")))
}
