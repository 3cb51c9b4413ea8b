package errs

import "errors"

// 业务错误的分类，由 handler 层统一映射为 HTTP 状态码
var (
	ErrAlreadyExists      = errors.New("already exists")      // 唯一约束冲突（邮箱、昵称、分类名）
	ErrNotFound           = errors.New("not found")           // 记录不存在
	ErrForbidden          = errors.New("forbidden")           // 已认证但无权限（被封禁、非本人）
	ErrInvalidCredentials = errors.New("invalid credentials") // 登录凭据错误（不区分邮箱不存在和密码错误）
	ErrPasswordMismatch   = errors.New("password mismatch")   // 两次输入的密码不一致
	ErrInvalidInput       = errors.New("invalid input")       // 请求参数格式错误
)
