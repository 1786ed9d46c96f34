package service

import (
	"context"
	"time"

	"github.com/TencentBlueKing/gopkg/stringx"
	"github.com/pkg/errors"

	"github.com/binjuhor/likepost/pkg/identity"
	"github.com/binjuhor/likepost/pkg/model"
	"github.com/binjuhor/likepost/pkg/notify"
	"github.com/binjuhor/likepost/pkg/ratelimit"
	"github.com/binjuhor/likepost/pkg/store"
)

// user_agent 字段长度上限
const maxUserAgentLength = 255

// LikeStore 点赞记录存储
type LikeStore interface {
	HasLiked(ctx context.Context, id identity.Identity, postID int64) (bool, error)
	Count(ctx context.Context, postID int64) (int64, error)
	// Insert 唯一键冲突时返回 store.ErrDuplicate
	Insert(ctx context.Context, record *model.LikeRecord) error
	TopLiked(ctx context.Context, limit int) ([]model.PostLikes, error)
}

// Catalog 文章目录
type Catalog interface {
	Exists(postID int64) bool
	TitleAndURL(postID int64) (title, url string, ok bool)
}

// Config 点赞服务配置
type Config struct {
	// SiteName 站点名称（通知邮件标题）
	SiteName string
	// AdminEmail 通知收件人
	AdminEmail string
}

// Result 点赞 / 状态查询结果
type Result struct {
	Likes    int64 `json:"likes"`
	HasLiked bool  `json:"hasLiked"`
}

// TopPost 排行榜条目
type TopPost struct {
	PostID int64  `json:"postID"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Likes  int64  `json:"likes"`
}

// LikeService 点赞服务，串联目标校验、限流、去重、落库与通知分发
type LikeService struct {
	store      LikeStore
	limiter    ratelimit.Limiter
	catalog    Catalog
	dispatcher *notify.Dispatcher
	cfg        Config
}

// New ...
func New(
	s LikeStore, limiter ratelimit.Limiter, catalog Catalog, dispatcher *notify.Dispatcher, cfg Config,
) *LikeService {
	return &LikeService{store: s, limiter: limiter, catalog: catalog, dispatcher: dispatcher, cfg: cfg}
}

// Like 为指定文章登记一次点赞
//
// 步骤 1-5 快速失败，任何失败路径都不会留下已生效的点赞；
// 通知分发异步执行且失败不影响结果
func (s *LikeService) Like(
	ctx context.Context, postID int64, id identity.Identity, userAgent string,
) (*Result, error) {
	// 1. 目标校验
	if postID <= 0 || !s.catalog.Exists(postID) {
		return nil, errInvalidTarget()
	}

	// 2. 限流（同一主体对同一文章窗口内只允许一次尝试）
	allowed, err := s.limiter.Allow(ctx, ratelimit.Key(id, postID))
	if err != nil {
		// 限流器故障时不放行
		return nil, errStorageFailure(err)
	}
	if !allowed {
		return nil, errRateLimited()
	}

	// 3. 去重快速路径，落库时的唯一索引才是最终保障
	liked, err := s.store.HasLiked(ctx, id, postID)
	if err != nil {
		return nil, errStorageFailure(err)
	}
	if liked {
		return nil, errAlreadyLiked()
	}

	// 4. 落库，并发竞争产生的唯一键冲突与快速路径同样处理
	record := &model.LikeRecord{
		PostID:    postID,
		UserID:    id.UserID,
		IPAddress: id.IP,
		UserAgent: stringx.Truncate(userAgent, maxUserAgentLength),
	}
	if err = s.store.Insert(ctx, record); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, errAlreadyLiked()
		}
		return nil, errStorageFailure(err)
	}

	// 5. 重新统计点赞数
	likes, err := s.store.Count(ctx, postID)
	if err != nil {
		// 点赞已生效，仅计数失败
		return nil, errStorageFailure(err)
	}

	// 6. 异步分发通知
	s.dispatchNotification(postID, likes, id)

	return &Result{Likes: likes, HasLiked: true}, nil
}

// Status 查询指定文章的点赞数与当前主体是否已点赞，无副作用
func (s *LikeService) Status(ctx context.Context, postID int64, id identity.Identity) (*Result, error) {
	if postID <= 0 || !s.catalog.Exists(postID) {
		return nil, errInvalidTarget()
	}

	likes, err := s.store.Count(ctx, postID)
	if err != nil {
		return nil, errStorageFailure(err)
	}
	liked, err := s.store.HasLiked(ctx, id, postID)
	if err != nil {
		return nil, errStorageFailure(err)
	}

	return &Result{Likes: likes, HasLiked: liked}, nil
}

// TopLiked 获取点赞排行，并补充文章标题与链接
func (s *LikeService) TopLiked(ctx context.Context, limit int) ([]TopPost, error) {
	ranking, err := s.store.TopLiked(ctx, limit)
	if err != nil {
		return nil, errStorageFailure(err)
	}

	topPosts := make([]TopPost, 0, len(ranking))
	for _, r := range ranking {
		title, url, _ := s.catalog.TitleAndURL(r.PostID)
		topPosts = append(topPosts, TopPost{PostID: r.PostID, Title: title, URL: url, Likes: r.Likes})
	}
	return topPosts, nil
}

func (s *LikeService) dispatchNotification(postID, likes int64, id identity.Identity) {
	title, url, ok := s.catalog.TitleAndURL(postID)
	if !ok {
		return
	}
	subject, body := notify.ComposeLikeMail(s.cfg.SiteName, title, url, likes, id.Describe(), time.Now())
	s.dispatcher.Dispatch(s.cfg.AdminEmail, subject, body)
}
