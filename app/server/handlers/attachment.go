package handlers

import (
	"io"
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

func (a *App) attachmentPath(id uuid.UUID) string {
	return filepath.Join(a.uploadDir, id.String())
}

func (a *App) AttachmentUpload(c echo.Context) error {
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

	// 确认广告存在且属于上传者
	var ad models.Advertisement
	if err := a.db.WithContext(rctx).First(&ad, "id = ?", adID).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}
	if ad.UserID != jwtUser.ID {
		return a.erClassified(c, errs.ErrForbidden)
	}

	// 提取上传的文件
	fileHeader, err := c.FormFile("file")
	if err != nil {
		a.l.Info("failed to get form file", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	attachment := models.Attachment{
		FileName:        fileHeader.Filename,
		ContentType:     fileHeader.Header.Get(echo.HeaderContentType),
		Size:            fileHeader.Size,
		AdvertisementID: adID,
	}
	if err := a.db.WithContext(rctx).Create(&attachment).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	// 落盘，文件名用附件 ID
	src, err := fileHeader.Open()
	if err != nil {
		a.l.Error("failed to open uploaded file", zap.Error(err))
		a.db.WithContext(rctx).Delete(&models.Attachment{}, "id = ?", attachment.ID)
		return a.er(c, http.StatusInternalServerError)
	}
	defer src.Close()

	dst, err := os.Create(a.attachmentPath(attachment.ID))
	if err != nil {
		a.l.Error("failed to create attachment file", zap.Error(err))
		a.db.WithContext(rctx).Delete(&models.Attachment{}, "id = ?", attachment.ID)
		return a.er(c, http.StatusInternalServerError)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		a.l.Error("failed to store attachment file", zap.Error(err))
		a.db.WithContext(rctx).Delete(&models.Attachment{}, "id = ?", attachment.ID)
		os.Remove(a.attachmentPath(attachment.ID))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, &types.AttachmentInfo{
		ID:              attachment.ID,
		FileName:        attachment.FileName,
		ContentType:     attachment.ContentType,
		Size:            attachment.Size,
		AdvertisementID: attachment.AdvertisementID,
		Created:         attachment.Created,
	})
}

func (a *App) AttachmentDownload(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.erClassified(c, errs.ErrInvalidInput)
	}

	var attachment models.Attachment
	if err := a.db.WithContext(rctx).First(&attachment, "id = ?", id).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	f, err := os.Open(a.attachmentPath(attachment.ID))
	if err != nil {
		// 记录存在但磁盘上没有文件时按未找到处理
		if os.IsNotExist(err) {
			a.l.Warn("attachment file missing on disk", zap.String("id", attachment.ID.String()))
			return a.erClassified(c, errs.ErrNotFound)
		}
		a.l.Error("failed to open attachment file", zap.String("id", attachment.ID.String()), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, "inline; filename="+attachment.FileName)
	return c.Stream(http.StatusOK, attachment.ContentType, f)
}

func (a *App) AttachmentDelete(c echo.Context) error {
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

	var attachment models.Attachment
	if err := a.db.WithContext(rctx).First(&attachment, "id = ?", id).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	// 附件归属随广告判断：广告发布者本人或管理员可以删除
	var ad models.Advertisement
	if err := a.db.WithContext(rctx).First(&ad, "id = ?", attachment.AdvertisementID).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}
	if ad.UserID != jwtUser.ID && !jwtUser.Role.IsAdministrator() {
		return a.erClassified(c, errs.ErrForbidden)
	}

	if err := a.db.WithContext(rctx).Delete(&models.Attachment{}, "id = ?", id).Error; err != nil {
		return a.erClassified(c, dbErr(err))
	}

	if err := os.Remove(a.attachmentPath(attachment.ID)); err != nil && !os.IsNotExist(err) {
		a.l.Error("failed to remove attachment file", zap.String("id", attachment.ID.String()), zap.Error(err))
	}

	return c.NoContent(http.StatusNoContent)
}
