package identity

import (
	"fmt"

	"github.com/binjuhor/likepost/pkg/model"
)

// Identity 点赞主体，注册用户或按客户端地址识别的匿名访客
//
// 注：同一地址下的注册用户与匿名访客视为两个不同主体
type Identity struct {
	// UserID 用户 ID，0 表示匿名访客
	UserID int64
	// Name 用户展示名（仅注册用户）
	Name string
	// IP 客户端地址
	IP string
}

// IsRegistered 是否为注册用户
func (i Identity) IsRegistered() bool {
	return i.UserID > model.AnonymousUserID
}

// Describe 渲染通知邮件中的主体描述
func (i Identity) Describe() string {
	if i.IsRegistered() {
		return fmt.Sprintf("User: %s (ID: %d)", i.Name, i.UserID)
	}
	return fmt.Sprintf("Guest (IP: %s)", i.IP)
}
