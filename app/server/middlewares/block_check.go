package middlewares

import (
	"errors"
	"net/http"

	"classifieds-board/app/server/errs"
	"classifieds-board/app/server/jwt"
	"classifieds-board/app/server/services"
	"classifieds-board/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BlockCheck 在 echo-jwt 认证之后执行：令牌里的 isBlocked 只是签发时的快照，
// 这里用 sub 声明实时查询封禁状态，保证封禁立刻生效而不用等令牌过期。
// 没有令牌的请求不会走到这里（匿名接口不挂认证中间件）。
func BlockCheck(accountService *services.AccountService, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 提取类型化声明
			jwtUser, err := jwt.FromEchoContext(c)
			if err != nil {
				l.Info("failed to extract jwt claims", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, &types.ErrorMessage{
					Message: http.StatusText(http.StatusUnauthorized),
				})
			}

			rctx := c.Request().Context()

			// 查询实时封禁状态
			isBlocked, err := accountService.IsBlocked(rctx, jwtUser.ID)
			if err != nil {
				if errors.Is(err, errs.ErrNotFound) {
					// 账号已被删除，令牌随之失效
					return c.JSON(http.StatusUnauthorized, &types.ErrorMessage{
						Message: http.StatusText(http.StatusUnauthorized),
					})
				}
				l.Error("failed to query block status", zap.String("userID", jwtUser.ID.String()), zap.Error(err))
				return c.JSON(http.StatusInternalServerError, &types.ErrorMessage{
					Message: http.StatusText(http.StatusInternalServerError),
				})
			}

			if isBlocked {
				l.Info("blocked account rejected", zap.String("userID", jwtUser.ID.String()))
				return c.JSON(http.StatusForbidden, &types.ErrorMessage{
					Message: http.StatusText(http.StatusForbidden),
				})
			}

			// 设置 context ，后续 handler 直接取用
			c.Set("authUser", jwtUser)

			// 继续处理
			return next(c)
		}
	}
}
