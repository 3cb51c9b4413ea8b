package models

import (
	"time"

	"github.com/google/uuid"
)

// User 是公开的用户资料，广告和评论都挂在它下面
type User struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Created time.Time `gorm:"column:created;autoCreateTime;<-:create"`

	Nickname string `gorm:"column:nickname;uniqueIndex"` // 昵称，全局唯一
	Role     Role   `gorm:"column:role;type:text"`       // 角色，参与令牌签发和授权判断
}
