package handlers

import (
	"net/http"

	"classifieds-board/app/server/errs"
	"classifieds-board/app/server/models"
	"classifieds-board/app/server/types"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) CommentListByAdvertisement(c echo.Context) error {
	rctx := c.Request().Context()

	adID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.erClassified(c, errs.ErrInvalidInput)
	}

	// 确认广告存在
	var ad models.Advertisement
	if err := a.db.WithContext(rctx).First(&ad, "id = ?", adID).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	var comments []models.Comment
	if err := a.db.WithContext(rctx).
		Preload("User").
		Where("advertisement_id = ?", adID).
		Order("created ASC").
		Find(&comments).Error; err != nil {
		a.l.Error("failed to get comment list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resComments := []types.CommentInfo{}
	for _, comment := range comments {
		resComments = append(resComments, types.CommentInfo{
			ID:              comment.ID,
			Text:            comment.Text,
			UserID:          comment.UserID,
			Nickname:        comment.User.Nickname,
			AdvertisementID: comment.AdvertisementID,
			Created:         comment.Created,
		})
	}

	return c.JSON(http.StatusOK, resComments)
}

func (a *App) CommentCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	jwtUser, err, statusCode := a.authUser(c, false)
	if err != nil {
		a.l.Info("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	adID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.erClassified(c, errs.ErrInvalidInput)
	}

	// 绑定请求体
	var req types.CommentInput
	if err := c.Bind(&req); err != nil {
		a.l.Info("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.erValidation(c, err)
	}

	// 确认广告存在
	var ad models.Advertisement
	if err := a.db.WithContext(rctx).First(&ad, "id = ?", adID).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	comment := models.Comment{
		Text:            req.Text,
		UserID:          jwtUser.ID,
		AdvertisementID: adID,
	}
	if err := a.db.WithContext(rctx).Create(&comment).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	return c.JSON(http.StatusCreated, &types.CommentInfo{
		ID:              comment.ID,
		Text:            comment.Text,
		UserID:          comment.UserID,
		Nickname:        jwtUser.Nickname,
		AdvertisementID: comment.AdvertisementID,
		Created:         comment.Created,
	})
}

func (a *App) CommentDelete(c echo.Context) error {
	// 抓取 user 信息（认证）
	jwtUser, err, statusCode := a.authUser(c, false)
	if err != nil {
		a.l.Info("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.erClassified(c, errs.ErrInvalidInput)
	}

	var comment models.Comment
	if err := a.db.WithContext(rctx).First(&comment, "id = ?", id).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	// 评论者本人、版主、管理员可以删除
	if comment.UserID != jwtUser.ID && !jwtUser.Role.CanModerate() {
		return a.erClassified(c, errs.ErrForbidden)
	}

	if err := a.db.WithContext(rctx).Delete(&models.Comment{}, "id = ?", id).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	return c.NoContent(http.StatusNoContent)
}
