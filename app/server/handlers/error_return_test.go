package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"classifieds-board/app/server/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErClassified(t *testing.T) {
	a := &App{l: zap.NewNop()}

	cases := []struct {
		err    error
		status int
	}{
		{errs.ErrAlreadyExists, http.StatusConflict},
		{errs.ErrNotFound, http.StatusNotFound},
		{errs.ErrForbidden, http.StatusForbidden},
		{errs.ErrInvalidCredentials, http.StatusUnauthorized},
		{errs.ErrPasswordMismatch, http.StatusBadRequest},
		{errs.ErrInvalidInput, http.StatusBadRequest},
		// 包装过的错误也要映射到位
		{errors.Join(errors.New("create account"), errs.ErrAlreadyExists), http.StatusConflict},
		// 未分类错误一律 500
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, a.erClassified(c, tc.err))
		assert.Equal(t, tc.status, rec.Code, "error: %v", tc.err)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
	}
}
