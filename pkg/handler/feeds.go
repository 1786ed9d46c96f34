package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"

	"github.com/binjuhor/likepost/pkg/envs"
	"github.com/binjuhor/likepost/pkg/utils/ginx"
)

// GetTopLikedFeed 点赞排行榜的 Atom 订阅
func GetTopLikedFeed(c *gin.Context) {
	topPosts, err := svc.TopLiked(c.Request.Context(), ginx.GetLimitFromQuery(c))
	if err != nil {
		setSvcErrResp(c, err)
		return
	}

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("Top liked posts on %s", envs.SiteName),
		Link:        &feeds.Link{Href: fmt.Sprintf("%s://%s/posts", envs.DomainScheme, envs.Domain)},
		Description: "posts ranked by like count",
		Author:      &feeds.Author{Name: envs.SiteName, Email: envs.AdminEmail},
		Updated:     time.Now(),
	}
	for _, post := range topPosts {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          fmt.Sprintf("%d", post.PostID),
			Title:       fmt.Sprintf("%s (%d likes)", post.Title, post.Likes),
			Link:        &feeds.Link{Href: post.URL},
			Description: fmt.Sprintf("liked %d times", post.Likes),
		})
	}
	atom, _ := feed.ToAtom()

	// 不直接使用 c.XML() 以避免被包装 <string></string>
	c.Writer.Header().Set("Content-Type", "application/xml; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)
	_, _ = c.Writer.Write([]byte(atom))
}
