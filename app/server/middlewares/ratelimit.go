package middlewares

import (
	"fmt"
	"net/http"

	"classifieds-board/app/server/constants"
	"classifieds-board/app/server/types"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SignInRateLimit 按客户端 IP 限制登录尝试频率，减缓在线爆破。
// Redis 不可用时放行请求：限流是保护手段，不能变成登录的单点故障。
func SignInRateLimit(rdb *redis.Client, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rctx := c.Request().Context()

			key := fmt.Sprintf(constants.SignInRateLimitKey, c.RealIP())

			// 计数
			count, err := rdb.Incr(rctx, key).Result()
			if err != nil {
				l.Error("failed to incr rate limit counter", zap.String("key", key), zap.Error(err))
				return next(c)
			}

			// 第一次计数时设置窗口
			if count == 1 {
				if err := rdb.Expire(rctx, key, constants.SignInRateLimitDuration).Err(); err != nil {
					l.Error("failed to set rate limit expiry", zap.String("key", key), zap.Error(err))
				}
			}

			if count > constants.SignInRateLimitMax {
				return c.JSON(http.StatusTooManyRequests, &types.ErrorMessage{
					Message: http.StatusText(http.StatusTooManyRequests),
				})
			}

			// 继续处理
			return next(c)
		}
	}
}
