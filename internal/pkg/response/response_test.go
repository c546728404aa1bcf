package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/promostack/storefront-core/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func perform(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handler)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestOKWrapsSlices(t *testing.T) {
	w := perform(func(c *gin.Context) { OK(c, []string{"a", "b"}) })
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string][]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"a", "b"}, body["data"])
}

func TestErrorMapsKinds(t *testing.T) {
	cases := map[apperr.Kind]int{
		apperr.Validation:   http.StatusBadRequest,
		apperr.NotFound:     http.StatusNotFound,
		apperr.Unauthorized: http.StatusUnauthorized,
		apperr.Forbidden:    http.StatusForbidden,
		apperr.Conflict:     http.StatusConflict,
		apperr.Persistence:  http.StatusInternalServerError,
	}
	for kind, status := range cases {
		w := perform(func(c *gin.Context) { Error(c, apperr.New(kind, "boom")) })
		assert.Equal(t, status, w.Code, "kind %s", kind)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.EqualValues(t, 0, body["ok"])
		assert.EqualValues(t, status, body["code"])
	}
}
