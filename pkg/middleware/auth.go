package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/binjuhor/likepost/pkg/envs"
	"github.com/binjuhor/likepost/pkg/logging"
	"github.com/binjuhor/likepost/pkg/utils/ginx"
	"github.com/binjuhor/likepost/pkg/utils/jwtx"
)

// Auth 可选的用户态解析：携带合法 Token 时写入用户信息，
// 未携带或校验失败时按匿名访客处理（点赞对游客开放，因此不中断请求）
func Auth() gin.HandlerFunc {
	secret := []byte(envs.JWTSigningKey)

	return func(c *gin.Context) {
		if len(secret) == 0 {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := jwtx.ParseToken(secret, parts[1])
		if err != nil {
			logging.GetSystemLogger().Debugf("invalid token, fallback to guest: %s", err)
			c.Next()
			return
		}

		ginx.SetUserID(c, claims.UserID)
		ginx.SetUserName(c, claims.Name)
		c.Next()
	}
}
