package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// FromEchoContext 从 echo-jwt 中间件解析好的令牌里取出类型化的声明。
// 没有经过认证中间件的请求（匿名接口）会返回错误。
func FromEchoContext(c echo.Context) (*User, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("no token in request context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T", token.Claims)
	}

	return userFromClaims(claims)
}
