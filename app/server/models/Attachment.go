package models

import (
	"time"

	"github.com/google/uuid"
)

// Attachment 是广告的附件（图片等），文件本体存磁盘，这里只存元数据
type Attachment struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Created time.Time `gorm:"column:created;autoCreateTime;<-:create"`

	FileName    string `gorm:"column:file_name"`    // 上传时的原始文件名
	ContentType string `gorm:"column:content_type"` // MIME 类型
	Size        int64  `gorm:"column:size"`         // 文件大小（字节）

	// 连接模型时使用
	AdvertisementID uuid.UUID `gorm:"column:advertisement_id;type:uuid;index"` // 所属广告
}
