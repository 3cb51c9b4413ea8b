package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"classifieds-board/app/server/constants"
	"classifieds-board/app/server/errs"
	"classifieds-board/app/server/models"
	"classifieds-board/app/server/types"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func (a *App) CategoryList(c echo.Context) error {
	rctx := c.Request().Context()

	// 查询缓存
	if cacheBytes, err := a.rdb.Get(rctx, constants.CacheKeyCategoryTree).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to query cache for category tree", zap.Error(err))
		}
	} else {
		var cached []types.CategoryInfo
		if err = json.Unmarshal(cacheBytes, &cached); err != nil {
			a.l.Error("failed to unmarshal category tree", zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
			// 可能是无效的缓存，清理掉
			a.rdb.Del(rctx, constants.CacheKeyCategoryTree)
		} else {
			return c.JSON(http.StatusOK, cached)
		}
	}

	// 查询数据库
	var categories []models.Category
	if err := a.db.WithContext(rctx).Preload("Subcategories").Order("name ASC").Find(&categories).Error; err != nil {
		a.l.Error("failed to get category list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resCategories := []types.CategoryInfo{}
	for _, category := range categories {
		info := types.CategoryInfo{
			ID:   category.ID,
			Name: category.Name,
		}
		for _, sub := range category.Subcategories {
			info.Subcategories = append(info.Subcategories, types.SubcategoryInfo{
				ID:         sub.ID,
				Name:       sub.Name,
				CategoryID: sub.CategoryID,
			})
		}
		resCategories = append(resCategories, info)
	}

	// 格式化并加入缓存，方便下一次查询
	if cacheBytes, err := json.Marshal(resCategories); err != nil {
		a.l.Error("failed to marshal category tree", zap.Error(err))
	} else {
		a.rdb.Set(rctx, constants.CacheKeyCategoryTree, cacheBytes, constants.CacheExpireCategoryTree)
	}

	return c.JSON(http.StatusOK, resCategories)
}

func (a *App) CategoryGet(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.erClassified(c, errs.ErrInvalidInput)
	}

	var category models.Category
	if err := a.db.WithContext(rctx).Preload("Subcategories").First(&category, "id = ?", id).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	info := types.CategoryInfo{
		ID:   category.ID,
		Name: category.Name,
	}
	for _, sub := range category.Subcategories {
		info.Subcategories = append(info.Subcategories, types.SubcategoryInfo{
			ID:         sub.ID,
			Name:       sub.Name,
			CategoryID: sub.CategoryID,
		})
	}

	return c.JSON(http.StatusOK, info)
}

func (a *App) CategoryCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, true)
	if err != nil {
		a.l.Info("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.CategoryInput
	if err := c.Bind(&req); err != nil {
		a.l.Info("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.erValidation(c, err)
	}

	category := models.Category{
		Name: req.Name,
	}
	if err := a.db.WithContext(rctx).Create(&category).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	// 分类变动，丢弃缓存
	a.rdb.Del(rctx, constants.CacheKeyCategoryTree)

	return c.JSON(http.StatusCreated, &types.CategoryInfo{
		ID:   category.ID,
		Name: category.Name,
	})
}

func (a *App) CategoryUpdate(c echo.Context) error {
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
	var req types.CategoryInput
	if err := c.Bind(&req); err != nil {
		a.l.Info("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return a.erValidation(c, err)
	}

	var category models.Category
	if err := a.db.WithContext(rctx).First(&category, "id = ?", id).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	if err := a.db.WithContext(rctx).Model(&category).Update("name", req.Name).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	// 分类变动，丢弃缓存
	a.rdb.Del(rctx, constants.CacheKeyCategoryTree)

	return c.JSON(http.StatusOK, &types.CategoryInfo{
		ID:   category.ID,
		Name: category.Name,
	})
}

func (a *App) CategoryDelete(c echo.Context) error {
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

	res := a.db.WithContext(rctx).Delete(&models.Category{}, "id = ?", id)
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
