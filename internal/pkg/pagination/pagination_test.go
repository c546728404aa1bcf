package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryFor(t *testing.T, rawQuery string) Query {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return FromContext(c)
}

func TestFromContextDefaults(t *testing.T) {
	q := queryFor(t, "")
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultSize, q.Size)
}

func TestFromContextClamps(t *testing.T) {
	q := queryFor(t, "page=-3&size=9999")
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, MaxSize, q.Size)

	q = queryFor(t, "page=abc&size=0")
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultSize, q.Size)
}

func TestFromContextPassthrough(t *testing.T) {
	q := queryFor(t, "page=3&size=5")
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 5, q.Size)
}
