package models

// Role 是封闭的角色枚举，授权判断基于它而不是裸字符串比较
type Role string

const (
	RoleUser          Role = "user"          // 普通用户
	RoleModerator     Role = "moderator"     // 版主，可以删除别人的广告和评论
	RoleAdministrator Role = "administrator" // 管理员，可以管理账号和分类
)

// Valid 检查是否为已知角色
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdministrator:
		return true
	}
	return false
}

// CanModerate 版主及以上
func (r Role) CanModerate() bool {
	return r == RoleModerator || r == RoleAdministrator
}

// IsAdministrator 仅管理员
func (r Role) IsAdministrator() bool {
	return r == RoleAdministrator
}
