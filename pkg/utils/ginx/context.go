package ginx

import "github.com/gin-gonic/gin"

const (
	// RequestIDKey ...
	RequestIDKey = "requestID"
	// UserIDKey ...
	UserIDKey = "userID"
	// UserNameKey ...
	UserNameKey = "userName"
	// ErrorKey ...
	ErrorKey = "error"
)

// GetRequestID ...
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// SetRequestID ...
func SetRequestID(c *gin.Context, requestID string) {
	c.Set(RequestIDKey, requestID)
}

// GetUserID 获取当前登录用户 ID，未登录时为 0
func GetUserID(c *gin.Context) int64 {
	return c.GetInt64(UserIDKey)
}

// SetUserID ...
func SetUserID(c *gin.Context, userID int64) {
	c.Set(UserIDKey, userID)
}

// GetUserName ...
func GetUserName(c *gin.Context) string {
	return c.GetString(UserNameKey)
}

// SetUserName ...
func SetUserName(c *gin.Context, userName string) {
	c.Set(UserNameKey, userName)
}

// GetError ...
func GetError(c *gin.Context) (any, bool) {
	return c.Get(ErrorKey)
}

// SetError ...
func SetError(c *gin.Context, err error) {
	c.Set(ErrorKey, err)
}
