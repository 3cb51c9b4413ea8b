package handlers

import (
	"errors"
	"net/http"

	"classifieds-board/app/server/errs"
	"classifieds-board/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Message: http.StatusText(statusCode),
	})
}

// erClassified 把业务错误映射为 HTTP 状态码。
// 已分类的错误是预期内的客户端问题，记 info ；没分类到的按服务端故障处理，记 error 并返回 500 。
func (a *App) erClassified(c echo.Context, err error) error {
	var statusCode int
	switch {
	case errors.Is(err, errs.ErrAlreadyExists):
		statusCode = http.StatusConflict
	case errors.Is(err, errs.ErrNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		statusCode = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
	case errors.Is(err, errs.ErrPasswordMismatch), errors.Is(err, errs.ErrInvalidInput):
		statusCode = http.StatusBadRequest
	default:
		a.l.Error("unclassified error", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.l.Info("request rejected", zap.Int("status", statusCode), zap.Error(err))
	return c.JSON(statusCode, &types.ErrorMessage{
		Message: err.Error(),
	})
}

// erValidation 请求体校验失败，把具体原因返回给客户端
func (a *App) erValidation(c echo.Context, err error) error {
	a.l.Info("request validation failed", zap.Error(err))
	return c.JSON(http.StatusBadRequest, &types.ErrorMessage{
		Message: err.Error(),
	})
}
