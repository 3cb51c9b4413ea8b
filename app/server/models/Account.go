package models

import (
	"time"

	"github.com/google/uuid"
)

// Account 是认证记录，与 User （资料记录）一一对应
type Account struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Created time.Time `gorm:"column:created;autoCreateTime;<-:create"` // 创建时间（UTC），创建后不可变

	Email        string `gorm:"column:email;uniqueIndex"` // 邮箱，全局唯一，登录凭据
	PasswordHash string `gorm:"column:password_hash"`     // 密码摘要（SHA-256 十六进制），绝不存明文
	IsBlocked    bool   `gorm:"column:is_blocked"`        // 封禁标记，只由管理员操作修改

	// 连接模型时使用
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;uniqueIndex"`       // 关联的用户资料 ID
	User   User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"` // 用户资料，删除用户时账号一并删除
}
