package service

import (
	"net/http"
)

// 点赞失败类别，对外保持稳定，供调用方按类别处理
const (
	// KindInvalidTarget 目标文章不合法或不存在（客户端错误，原样重试无意义）
	KindInvalidTarget = "InvalidTarget"
	// KindRateLimited 触发冷却限制（窗口过期后可重试）
	KindRateLimited = "RateLimited"
	// KindAlreadyLiked 该主体已点赞过（终态，不可重试）
	KindAlreadyLiked = "AlreadyLiked"
	// KindStorageFailure 存储故障（可退避重试）
	KindStorageFailure = "StorageFailure"
)

// Error 点赞服务错误，携带机器可读类别与建议的 HTTP 状态码
type Error struct {
	Kind    string
	Status  int
	Message string
	cause   error
}

// Error ...
func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap ...
func (e *Error) Unwrap() error {
	return e.cause
}

func errInvalidTarget() *Error {
	return &Error{Kind: KindInvalidTarget, Status: http.StatusBadRequest, Message: "Invalid post"}
}

func errRateLimited() *Error {
	return &Error{
		Kind: KindRateLimited, Status: http.StatusTooManyRequests, Message: "Please wait before liking again",
	}
}

func errAlreadyLiked() *Error {
	return &Error{
		Kind: KindAlreadyLiked, Status: http.StatusForbidden, Message: "You have already liked this post",
	}
}

func errStorageFailure(cause error) *Error {
	return &Error{
		Kind: KindStorageFailure, Status: http.StatusInternalServerError, Message: "Failed to save like", cause: cause,
	}
}
