package models

import (
	"time"

	"github.com/google/uuid"
)

// Category 是顶级分类
type Category struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Created time.Time `gorm:"column:created;autoCreateTime;<-:create"`

	Name string `gorm:"column:name;uniqueIndex"` // 分类名称，全局唯一

	// 连接模型时使用
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID"` // 子分类
}
