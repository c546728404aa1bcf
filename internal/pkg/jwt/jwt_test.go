package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign("user-1", "session-1", time.Minute)
	assert.NoError(t, err)

	claims, err := Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "session-1", claims.SessionID)
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := Sign("user-1", "session-1", -time.Minute)
	assert.NoError(t, err)

	_, err = Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-jwt")
	assert.Error(t, err)
}
