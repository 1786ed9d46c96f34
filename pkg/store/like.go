package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/binjuhor/likepost/pkg/identity"
	"github.com/binjuhor/likepost/pkg/infras/database"
	"github.com/binjuhor/likepost/pkg/model"
)

// ErrDuplicate 点赞记录已存在（唯一键冲突）
var ErrDuplicate = errors.New("like record already exists")

// LikeStore 点赞记录存储，post_likes 表上的唯一索引是去重的最终保障
type LikeStore struct{}

// NewLikeStore ...
func NewLikeStore() *LikeStore {
	return &LikeStore{}
}

// HasLiked 该主体是否已点赞过该文章：注册用户按 user_id 匹配，匿名访客按地址匹配
func (s *LikeStore) HasLiked(ctx context.Context, id identity.Identity, postID int64) (bool, error) {
	query := database.Client(ctx).Model(&model.LikeRecord{})
	if id.IsRegistered() {
		query = query.Where("post_id = ? AND user_id = ?", postID, id.UserID)
	} else {
		query = query.Where(
			"post_id = ? AND user_id = ? AND ip_address = ?", postID, model.AnonymousUserID, id.IP,
		)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check like record")
	}
	return count > 0, nil
}

// Count 统计文章点赞数（实时统计，不维护计数字段）
func (s *LikeStore) Count(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := database.Client(ctx).
		Model(&model.LikeRecord{}).
		Where("post_id = ?", postID).
		Count(&count).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "count likes")
	}
	return count, nil
}

// Insert 写入点赞记录，唯一键冲突时返回 ErrDuplicate
func (s *LikeStore) Insert(ctx context.Context, record *model.LikeRecord) error {
	if err := database.Client(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return errors.Wrap(err, "insert like record")
	}
	return nil
}

// TopLiked 获取点赞数最多的文章，点赞数相同时按文章 ID 升序保证稳定
func (s *LikeStore) TopLiked(ctx context.Context, limit int) ([]model.PostLikes, error) {
	var result []model.PostLikes
	err := database.Client(ctx).
		Model(&model.LikeRecord{}).
		Select("post_id, COUNT(*) AS likes").
		Group("post_id").
		Order("likes DESC, post_id ASC").
		Limit(limit).
		Scan(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "query top liked posts")
	}
	return result, nil
}
