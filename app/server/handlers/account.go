package handlers

import (
	"net/http"

	"classifieds-board/app/server/errs"
	"classifieds-board/app/server/models"
	"classifieds-board/app/server/services"
	"classifieds-board/app/server/types"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func accountInfo(account *models.Account) types.AccountInfo {
	return types.AccountInfo{
		ID:        account.ID,
		Email:     account.Email,
		Created:   account.Created,
		IsBlocked: account.IsBlocked,
		UserID:    account.UserID,
		Nickname:  account.User.Nickname,
		Role:      string(account.User.Role),
	}
}

func (a *App) AccountSignUp(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.SignUpRequest
	if err := c.Bind(&req); err != nil {
		a.l.Info("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.erValidation(c, err)
	}

	// 创建账号
	account, err := a.account.SignUp(rctx, services.SignUpInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Nickname:        req.Nickname,
	})
	if err != nil {
		return a.erClassified(c, err)
	}

	// 返回，不带任何密码数据
	return c.JSON(http.StatusCreated, &types.AccountCreated{
		ID: account.ID,
	})
}

func (a *App) AccountSignIn(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.SignInRequest
	if err := c.Bind(&req); err != nil {
		a.l.Info("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.erValidation(c, err)
	}

	token, err := a.account.SignIn(rctx, req.Email, req.Password)
	if err != nil {
		return a.erClassified(c, err)
	}

	// 返回
	return c.JSON(http.StatusOK, &types.TokenResponse{
		Token: token,
	})
}

func (a *App) AccountList(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Info("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	showAll, page, limit := a.parsePagination(a.bindPagination(c))

	// 展示全部时只重置查询参数，响应里的 limit 与其他列表接口一样保持 -1
	offset, fetchLimit := page*limit, limit
	if showAll {
		offset, fetchLimit = 0, 0
	}

	accounts, count, err := a.account.List(rctx, offset, fetchLimit)
	if err != nil {
		return a.erClassified(c, err)
	}

	resAccounts := []types.AccountInfo{}
	for i := range accounts {
		resAccounts = append(resAccounts, accountInfo(&accounts[i]))
	}

	return c.JSON(http.StatusOK, &types.AccountListResponse{
		Limit:   limit,
		PageMax: a.calcMaxPage(count, showAll, limit),
		List:    resAccounts,
	})
}

func (a *App) AccountGet(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Info("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.erClassified(c, errs.ErrInvalidInput)
	}

	account, err := a.account.GetByID(rctx, id)
	if err != nil {
		return a.erClassified(c, err)
	}

	return c.JSON(http.StatusOK, accountInfo(account))
}

func (a *App) AccountGetCurrent(c echo.Context) error {
	// 这里是对用户本身的操作，没有指定 id ，身份从令牌声明里取
	jwtUser, err, statusCode := a.authUser(c, false)
	if err != nil {
		a.l.Info("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	account, err := a.account.GetByUserID(rctx, jwtUser.ID)
	if err != nil {
		return a.erClassified(c, err)
	}

	return c.JSON(http.StatusOK, accountInfo(account))
}

func (a *App) AccountPasswordUpdate(c echo.Context) error {
	// 抓取 user 信息（认证）
	jwtUser, err, statusCode := a.authUser(c, false)
	if err != nil {
		a.l.Info("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		a.l.Info("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.erValidation(c, err)
	}

	if err := a.account.ChangePassword(rctx, jwtUser.ID, req.CurrentPassword, req.NewPassword, req.ConfirmNewPassword); err != nil {
		return a.erClassified(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (a *App) AccountBlock(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Info("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.erClassified(c, errs.ErrInvalidInput)
	}

	// 绑定请求体
	var req types.BlockRequest
	if err := c.Bind(&req); err != nil {
		a.l.Info("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.IsBlocked == nil {
		return a.er(c, http.StatusBadRequest)
	}

	isBlocked, err := a.account.BlockByID(rctx, id, *req.IsBlocked)
	if err != nil {
		return a.erClassified(c, err)
	}

	return c.JSON(http.StatusOK, &types.BlockStatus{
		ID:        id,
		IsBlocked: isBlocked,
	})
}

func (a *App) AccountDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Info("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.erClassified(c, errs.ErrInvalidInput)
	}

	if err := a.account.DeleteByID(rctx, id); err != nil {
		return a.erClassified(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
