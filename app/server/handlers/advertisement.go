package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"classifieds-board/app/server/errs"
	"classifieds-board/app/server/models"
	"classifieds-board/app/server/types"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func advertisementInfo(ad *models.Advertisement) types.AdvertisementInfo {
	return types.AdvertisementInfo{
		ID:            ad.ID,
		Title:         ad.Title,
		Text:          ad.Text,
		Price:         ad.Price,
		UserID:        ad.UserID,
		Nickname:      ad.User.Nickname,
		SubcategoryID: ad.SubcategoryID,
		Created:       ad.Created,
		Updated:       ad.Updated,
	}
}

func (a *App) AdvertisementList(c echo.Context) error {
	rctx := c.Request().Context()

	var (
		ads      []models.Advertisement
		adsCount int64
	)

	showAll, page, limit := a.parsePagination(a.bindPagination(c))

	queryBase := a.db.WithContext(rctx).Model(&models.Advertisement{}).Preload("User").Order("created DESC")
	countBase := a.db.WithContext(rctx).Model(&models.Advertisement{})

	// 可选的子分类过滤
	if subStr := c.QueryParam("subcategory"); subStr != "" {
		subID, err := uuid.Parse(subStr)
		if err != nil {
			return a.erClassified(c, errs.ErrInvalidInput)
		}
		queryBase = queryBase.Where("subcategory_id = ?", subID)
		countBase = countBase.Where("subcategory_id = ?", subID)
	}

	if !showAll {
		queryBase = queryBase.Limit(limit).Offset(page * limit)
	}

	if err := queryBase.Find(&ads).Error; err != nil {
		a.l.Error("failed to get advertisement list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if err := countBase.Count(&adsCount).Error; err != nil {
		a.l.Error("failed to count advertisements", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resAds := []types.AdvertisementInfo{}
	for i := range ads {
		resAds = append(resAds, advertisementInfo(&ads[i]))
	}

	return c.JSON(http.StatusOK, &types.AdvertisementListResponse{
		Limit:   limit,
		PageMax: a.calcMaxPage(adsCount, showAll, limit),
		List:    resAds,
	})
}

func (a *App) AdvertisementGet(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.erClassified(c, errs.ErrInvalidInput)
	}

	var ad models.Advertisement
	if err := a.db.WithContext(rctx).Preload("User").First(&ad, "id = ?", id).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	return c.JSON(http.StatusOK, advertisementInfo(&ad))
}

func (a *App) AdvertisementCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	jwtUser, err, statusCode := a.authUser(c, false)
	if err != nil {
		a.l.Info("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.AdvertisementInput
	if err := c.Bind(&req); err != nil {
		a.l.Info("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.erValidation(c, err)
	}

	// 确认子分类存在
	var sub models.Subcategory
	if err := a.db.WithContext(rctx).First(&sub, "id = ?", req.SubcategoryID).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	ad := models.Advertisement{
		Title:         req.Title,
		Text:          req.Text,
		Price:         req.Price,
		UserID:        jwtUser.ID,
		SubcategoryID: req.SubcategoryID,
	}
	if err := a.db.WithContext(rctx).Create(&ad).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	ad.User.Nickname = jwtUser.Nickname

	return c.JSON(http.StatusCreated, advertisementInfo(&ad))
}

func (a *App) AdvertisementUpdate(c echo.Context) error {
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

	// 绑定请求体
	var req types.AdvertisementInput
	if err := c.Bind(&req); err != nil {
		a.l.Info("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.erValidation(c, err)
	}

	var ad models.Advertisement
	if err := a.db.WithContext(rctx).Preload("User").First(&ad, "id = ?", id).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	// 只有发布者本人可以编辑
	if ad.UserID != jwtUser.ID {
		return a.erClassified(c, errs.ErrForbidden)
	}

	// 确认子分类存在
	var sub models.Subcategory
	if err := a.db.WithContext(rctx).First(&sub, "id = ?", req.SubcategoryID).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	ad.Title = req.Title
	ad.Text = req.Text
	ad.Price = req.Price
	ad.SubcategoryID = req.SubcategoryID

	// 显式列出更新列：结构体形式的 Updates 会跳过零值字段，价格改为 0 会被丢掉
	if err := a.db.WithContext(rctx).Model(&ad).
		Select("title", "text", "price", "subcategory_id").
		Updates(&ad).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	return c.JSON(http.StatusOK, advertisementInfo(&ad))
}

func (a *App) AdvertisementDelete(c echo.Context) error {
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

	var ad models.Advertisement
	if err := a.db.WithContext(rctx).Preload("Attachments").First(&ad, "id = ?", id).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	// 发布者本人、版主、管理员可以删除
	if ad.UserID != jwtUser.ID && !jwtUser.Role.CanModerate() {
		return a.erClassified(c, errs.ErrForbidden)
	}

	// 评论和附件记录由外键级联删除
	if err := a.db.WithContext(rctx).Delete(&models.Advertisement{}, "id = ?", id).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	// 磁盘上的附件文件尽力清理，失败只记日志
	for _, att := range ad.Attachments {
		if err := os.Remove(filepath.Join(a.uploadDir, att.ID.String())); err != nil && !os.IsNotExist(err) {
			a.l.Error("failed to remove attachment file", zap.String("id", att.ID.String()), zap.Error(err))
		}
	}

	return c.NoContent(http.StatusNoContent)
}
