package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func attachmentDownloadContext(id uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/attachments/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	return c, rec
}

func expectAttachmentRow(mock sqlmock.Sqlmock, id uuid.UUID) {
	mock.ExpectQuery(`SELECT \* FROM "attachments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created", "file_name", "content_type", "size", "advertisement_id"}).
			AddRow(id.String(), time.Now(), "photo.jpg", "image/jpeg", int64(5), uuid.New().String()))
}

func TestAttachmentDownload(t *testing.T) {
	gormDB, mock := newMockDB(t)

	attID := uuid.New()
	expectAttachmentRow(mock, attID)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, attID.String()), []byte("hello"), 0o600))

	a := NewApp(zap.NewNop(), gormDB, nil, nil, nil, dir)

	c, rec := attachmentDownloadContext(attID)
	require.NoError(t, a.AttachmentDownload(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
	assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachmentDownloadFileMissing(t *testing.T) {
	gormDB, mock := newMockDB(t)

	attID := uuid.New()
	expectAttachmentRow(mock, attID)

	// 元数据还在但磁盘上没有文件
	a := NewApp(zap.NewNop(), gormDB, nil, nil, nil, t.TempDir())

	c, rec := attachmentDownloadContext(attID)
	require.NoError(t, a.AttachmentDownload(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
