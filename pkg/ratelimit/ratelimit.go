package ratelimit

import (
	"context"
	"fmt"

	"github.com/binjuhor/likepost/pkg/identity"
)

// Limiter 点赞频率限制器，同一主体对同一文章在时间窗口内只放行一次
type Limiter interface {
	// Allow 原子地检查并占用时间窗口：窗口内已有记录时返回 false 且不做任何变更，
	// 否则写入一条带过期时间的记录并返回 true
	Allow(ctx context.Context, key string) (bool, error)
}

// Key 构造限流键
func Key(id identity.Identity, postID int64) string {
	return fmt.Sprintf("like:rl:%d:%s:%d", id.UserID, id.IP, postID)
}
