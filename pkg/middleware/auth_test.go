package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/binjuhor/likepost/pkg/envs"
	"github.com/binjuhor/likepost/pkg/utils/ginx"
	"github.com/binjuhor/likepost/pkg/utils/jwtx"
)

func runAuth(t *testing.T, authHeader string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/apis/posts/42/like", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	Auth()(c)
	return c
}

func TestAuthWithValidToken(t *testing.T) {
	oldKey := envs.JWTSigningKey
	envs.JWTSigningKey = "test-signing-key"
	defer func() { envs.JWTSigningKey = oldKey }()

	token, err := jwtx.GenerateToken([]byte(envs.JWTSigningKey), 7, "binjuhor", time.Hour)
	assert.NoError(t, err)

	c := runAuth(t, "Bearer "+token)
	assert.Equal(t, int64(7), ginx.GetUserID(c))
	assert.Equal(t, "binjuhor", ginx.GetUserName(c))
}

func TestAuthFallbackToGuest(t *testing.T) {
	oldKey := envs.JWTSigningKey
	envs.JWTSigningKey = "test-signing-key"
	defer func() { envs.JWTSigningKey = oldKey }()

	// 无 Token / 格式错误 / 校验失败时都按匿名处理，且不中断请求
	for _, header := range []string{"", "Basic abc", "Bearer not-a-token"} {
		c := runAuth(t, header)
		assert.Equal(t, int64(0), ginx.GetUserID(c))
		assert.False(t, c.IsAborted())
	}
}

func TestAuthDisabled(t *testing.T) {
	oldKey := envs.JWTSigningKey
	envs.JWTSigningKey = ""
	defer func() { envs.JWTSigningKey = oldKey }()

	c := runAuth(t, "Bearer whatever")
	assert.Equal(t, int64(0), ginx.GetUserID(c))
}
