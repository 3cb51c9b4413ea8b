package handlers

import (
	"net/http"

	"classifieds-board/app/server/constants"
	"classifieds-board/app/server/errs"
	"classifieds-board/app/server/models"
	"classifieds-board/app/server/types"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) SubcategoryListByCategory(c echo.Context) error {
	rctx := c.Request().Context()

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.erClassified(c, errs.ErrInvalidInput)
	}

	// 确认分类存在，让不存在的分类返回 404 而不是空列表
	var category models.Category
	if err := a.db.WithContext(rctx).First(&category, "id = ?", categoryID).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	var subcategories []models.Subcategory
	if err := a.db.WithContext(rctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&subcategories).Error; err != nil {
		a.l.Error("failed to get subcategory list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resSubcategories := []types.SubcategoryInfo{}
	for _, sub := range subcategories {
		resSubcategories = append(resSubcategories, types.SubcategoryInfo{
			ID:         sub.ID,
			Name:       sub.Name,
			CategoryID: sub.CategoryID,
		})
	}

	return c.JSON(http.StatusOK, resSubcategories)
}

func (a *App) SubcategoryGet(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.erClassified(c, errs.ErrInvalidInput)
	}

	var sub models.Subcategory
	if err := a.db.WithContext(rctx).First(&sub, "id = ?", id).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	return c.JSON(http.StatusOK, &types.SubcategoryInfo{
		ID:         sub.ID,
		Name:       sub.Name,
		CategoryID: sub.CategoryID,
	})
}

func (a *App) SubcategoryCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Info("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.erClassified(c, errs.ErrInvalidInput)
	}

	// 绑定请求体
	var req types.SubcategoryInput
	if err := c.Bind(&req); err != nil {
		a.l.Info("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.erValidation(c, err)
	}

	// 确认分类存在
	var category models.Category
	if err := a.db.WithContext(rctx).First(&category, "id = ?", categoryID).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	sub := models.Subcategory{
		Name:       req.Name,
		CategoryID: categoryID,
	}
	if err := a.db.WithContext(rctx).Create(&sub).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	// 分类变动，丢弃缓存
	a.rdb.Del(rctx, constants.CacheKeyCategoryTree)

	return c.JSON(http.StatusCreated, &types.SubcategoryInfo{
		ID:         sub.ID,
		Name:       sub.Name,
		CategoryID: sub.CategoryID,
	})
}

func (a *App) SubcategoryUpdate(c echo.Context) error {
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
	var req types.SubcategoryInput
	if err := c.Bind(&req); err != nil {
		a.l.Info("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.erValidation(c, err)
	}

	var sub models.Subcategory
	if err := a.db.WithContext(rctx).First(&sub, "id = ?", id).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	if err := a.db.WithContext(rctx).Model(&sub).Update("name", req.Name).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	// 分类变动，丢弃缓存
	a.rdb.Del(rctx, constants.CacheKeyCategoryTree)

	return c.JSON(http.StatusOK, &types.SubcategoryInfo{
		ID:         sub.ID,
		Name:       sub.Name,
		CategoryID: sub.CategoryID,
	})
}

func (a *App) SubcategoryDelete(c echo.Context) error {
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

	res := a.db.WithContext(rctx).Delete(&models.Subcategory{}, "id = ?", id)
	if res.Error != nil {
		return a.erClassified(c, dbErr(res.Error))
	}
	if res.RowsAffected == 0 {
		return a.erClassified(c, errs.ErrNotFound)
	}

	// 分类变动，丢弃缓存
	a.rdb.Del(rctx, constants.CacheKeyCategoryTree)

	return c.NoContent(http.StatusNoContent)
}
