package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/binjuhor/likepost/pkg/identity"
	"github.com/binjuhor/likepost/pkg/service"
	"github.com/binjuhor/likepost/pkg/utils/ginx"
)

// LikePost 点赞文章
func LikePost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		postID = 0
	}

	result, err := svc.Like(
		c.Request.Context(), postID, identity.FromContext(c), c.Request.UserAgent(),
	)
	if err != nil {
		setSvcErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, result)
}

// GetLikeStatus 查询文章点赞数及当前访客是否已点赞
func GetLikeStatus(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		postID = 0
	}

	result, err := svc.Status(c.Request.Context(), postID, identity.FromContext(c))
	if err != nil {
		setSvcErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, result)
}

// ListTopLiked 点赞排行榜
func ListTopLiked(c *gin.Context) {
	topPosts, err := svc.TopLiked(c.Request.Context(), ginx.GetLimitFromQuery(c))
	if err != nil {
		setSvcErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, topPosts)
}

// 将服务错误按类别映射为响应
func setSvcErrResp(c *gin.Context, err error) {
	ginx.SetError(c, err)

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		ginx.SetErrResp(c, svcErr.Status, svcErr.Kind, svcErr.Message)
		return
	}
	ginx.SetErrResp(c, http.StatusInternalServerError, service.KindStorageFailure, err.Error())
}
