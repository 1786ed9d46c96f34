package catalog

import (
	"fmt"
	"sync"

	"github.com/binjuhor/likepost/pkg/envs"
	"github.com/binjuhor/likepost/pkg/loader"
	"github.com/binjuhor/likepost/pkg/model"
)

// Catalog 文章目录，提供存在性与标题 / 链接查询
type Catalog struct {
	posts map[int64]model.Post
}

// New ...
func New(posts model.Posts) *Catalog {
	c := &Catalog{posts: make(map[int64]model.Post, len(posts))}
	for _, p := range posts {
		c.posts[p.ID] = p
	}
	return c
}

// Exists 文章是否存在
func (c *Catalog) Exists(postID int64) bool {
	_, ok := c.posts[postID]
	return ok
}

// TitleAndURL 获取文章标题与访问链接
func (c *Catalog) TitleAndURL(postID int64) (title, url string, ok bool) {
	post, ok := c.posts[postID]
	if !ok {
		return "", "", false
	}
	return post.Title, fmt.Sprintf("%s://%s/posts/%d", envs.DomainScheme, envs.Domain, post.ID), true
}

var defaultCatalog *Catalog

var initOnce sync.Once

// InitPostData 加载并初始化文章目录
func InitPostData() {
	if defaultCatalog != nil {
		return
	}
	initOnce.Do(func() {
		postData, err := loader.New().Exec()
		if err != nil {
			panic(err)
		}
		defaultCatalog = New(postData.Posts)
	})
}

// Default 获取默认文章目录
func Default() *Catalog {
	if defaultCatalog == nil {
		panic("post catalog not init")
	}
	return defaultCatalog
}
