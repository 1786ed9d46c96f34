package handler

import (
	"github.com/binjuhor/likepost/pkg/service"
)

var svc *service.LikeService

// Init 注入点赞服务实例，须在路由启动前调用
func Init(s *service.LikeService) {
	svc = s
}
