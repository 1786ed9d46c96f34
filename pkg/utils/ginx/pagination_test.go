package ginx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetLimitFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query string
		limit int
	}{
		{"", DefaultLimit},
		{"limit=abc", DefaultLimit},
		{"limit=5", 5},
		{"limit=0", MinLimit},
		{"limit=-3", MinLimit},
		{"limit=10000", MaxLimit},
	}
	for _, cs := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/apis/posts/top-liked?"+cs.query, nil)
		assert.Equal(t, cs.limit, GetLimitFromQuery(c), "query: %s", cs.query)
	}
}
