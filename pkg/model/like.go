package model

import "time"

// AnonymousUserID 匿名访客在点赞记录中的 user_id 取值
//
// 唯一索引列不允许为 NULL（MySQL 中 NULL 互不相等，无法约束去重），
// 因此匿名访客统一记为 0，依赖 ip_address 区分
const AnonymousUserID int64 = 0

// LikeRecord 点赞记录，只增不改不删
type LikeRecord struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	PostID    int64     `json:"postID" gorm:"not null;index;uniqueIndex:uk_post_user_ip"`
	UserID    int64     `json:"userID" gorm:"not null;default:0;index;uniqueIndex:uk_post_user_ip"`
	IPAddress string    `json:"ipAddress" gorm:"type:varchar(45);not null;index;uniqueIndex:uk_post_user_ip"`
	UserAgent string    `json:"userAgent" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;index"`
}

// TableName ...
func (LikeRecord) TableName() string {
	return "post_likes"
}

// PostLikes 单篇文章的点赞数统计
type PostLikes struct {
	PostID int64 `json:"postID"`
	Likes  int64 `json:"likes"`
}
