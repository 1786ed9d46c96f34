package router

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/binjuhor/likepost/pkg/envs"
	"github.com/binjuhor/likepost/pkg/handler"
	"github.com/binjuhor/likepost/pkg/middleware"
)

func InitRouter() {
	gin.SetMode(envs.GinRunMode)
	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Cors())
	router.Use(middleware.Auth())
	router.Use(gin.Recovery())

	// 404
	router.NoRoute(handler.Get404)
	// 探活
	router.GET("healthz", handler.GetHealthz)

	// api 路由
	{
		apiRg := router.Group("apis")
		// 点赞文章
		apiRg.POST("posts/:id/like", handler.LikePost)
		// 点赞状态查询
		apiRg.POST("posts/:id/status", handler.GetLikeStatus)
		// 点赞排行榜
		apiRg.GET("posts/top-liked", handler.ListTopLiked)
	}

	// feed 路由
	{
		feedRg := router.Group("feeds")
		// 点赞排行榜订阅
		feedRg.GET("top-liked", handler.GetTopLikedFeed)
	}

	if err := router.Run(":" + envs.ServerPort); err != nil {
		panic(fmt.Sprintf("failed to start server: %s", err.Error()))
	}
}
