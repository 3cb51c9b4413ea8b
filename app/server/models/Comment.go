package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment 是广告下的评论
type Comment struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Created time.Time `gorm:"column:created;autoCreateTime;<-:create"`

	Text string `gorm:"column:text;type:text"` // 评论内容

	// 连接模型时使用
	UserID          uuid.UUID `gorm:"column:user_id;type:uuid;index"`          // 评论者
	AdvertisementID uuid.UUID `gorm:"column:advertisement_id;type:uuid;index"` // 所属广告
	User            User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
