package models

import (
	"time"

	"github.com/google/uuid"
)

// Subcategory 是二级分类，广告直接挂在它下面
type Subcategory struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Created time.Time `gorm:"column:created;autoCreateTime;<-:create"`

	Name string `gorm:"column:name;uniqueIndex:idx_subcategory_category_name"` // 名称，同一分类下唯一

	// 连接模型时使用
	CategoryID uuid.UUID `gorm:"column:category_id;type:uuid;uniqueIndex:idx_subcategory_category_name;index"` // 所属分类 ID
	Category   Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`                            // 所属分类
}
