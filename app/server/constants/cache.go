package constants

import "time"

const (
	CacheKeyCategoryTree = "cb:category:tree" // 公开分类树（含子分类）
)

const (
	CacheExpireCategoryTree = 1 * time.Hour
)
