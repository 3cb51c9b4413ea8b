package handlers

import (
	"fmt"
	"net/http"

	"classifieds-board/app/server/jwt"

	"github.com/labstack/echo/v4"
)

func (a *App) authUser(c echo.Context, requireAdminRole bool) (*jwt.User, error, int) {
	// 封禁检查中间件已经放入 context 的话直接取用，否则从令牌解析
	jwtUser, ok := c.Get("authUser").(*jwt.User)
	if !ok {
		var err error
		if jwtUser, err = jwt.FromEchoContext(c); err != nil {
			return nil, fmt.Errorf("failed to get jwt user: %w", err), http.StatusUnauthorized
		}
	}

	// 验证权限
	if requireAdminRole && !jwtUser.Role.IsAdministrator() {
		return nil, fmt.Errorf("requires administrator role"), http.StatusForbidden
	}

	return jwtUser, nil, http.StatusOK
}
