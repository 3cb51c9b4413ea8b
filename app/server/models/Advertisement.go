package models

import (
	"time"

	"github.com/google/uuid"
)

// Advertisement 是广告本体
type Advertisement struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Created time.Time `gorm:"column:created;autoCreateTime;<-:create"`
	Updated time.Time `gorm:"column:updated;autoUpdateTime"` // 最后编辑时间

	Title string `gorm:"column:title"`              // 标题
	Text  string `gorm:"column:text;type:text"`     // 正文
	Price int64  `gorm:"column:price"`              // 价格（最小货币单位，避免浮点）

	// 连接模型时使用
	UserID        uuid.UUID    `gorm:"column:user_id;type:uuid;index"`        // 发布者
	SubcategoryID uuid.UUID    `gorm:"column:subcategory_id;type:uuid;index"` // 所属子分类
	User          User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Subcategory   Subcategory  `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:CASCADE"`
	Comments      []Comment    `gorm:"foreignKey:AdvertisementID;constraint:OnDelete:CASCADE"` // 评论
	Attachments   []Attachment `gorm:"foreignKey:AdvertisementID;constraint:OnDelete:CASCADE"` // 附件
}
