package identity

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/binjuhor/likepost/pkg/envs"
	"github.com/binjuhor/likepost/pkg/utils/ginx"
)

// UnknownIP 无法获取客户端地址时的兜底值
const UnknownIP = "unknown"

// FromContext 从请求上下文解析点赞主体，无副作用且总能解析成功：
// 已登录时返回注册用户身份，否则按客户端地址返回匿名身份
func FromContext(c *gin.Context) Identity {
	if userID := ginx.GetUserID(c); userID > 0 {
		return Identity{UserID: userID, Name: ginx.GetUserName(c), IP: clientIP(c)}
	}
	return Identity{IP: clientIP(c)}
}

// 获取客户端地址，按 接入层指定请求头 -> Client-IP -> X-Forwarded-For -> 连接地址 的顺序取值
func clientIP(c *gin.Context) string {
	if envs.RealClientIPHeaderKey != "" {
		if ip := c.GetHeader(envs.RealClientIPHeaderKey); ip != "" {
			return ip
		}
	}
	if ip := c.GetHeader("Client-IP"); ip != "" {
		return ip
	}
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		// 多级代理时取最初的客户端地址
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}
	if c.Request != nil && c.Request.RemoteAddr != "" {
		if ip, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
			return ip
		}
		return c.Request.RemoteAddr
	}
	return UnknownIP
}
