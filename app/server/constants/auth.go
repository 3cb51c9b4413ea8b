package constants

import "time"

const (
	AuthTokenDuration = 24 * time.Hour // 令牌有效期
)

const (
	SignInRateLimitKey      = "cb:ratelimit:signin:%s" // %s -> 客户端 IP
	SignInRateLimitMax      = 10                       // 窗口内允许的最多尝试次数
	SignInRateLimitDuration = 1 * time.Minute          // 计数窗口
)
