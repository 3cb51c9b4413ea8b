package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"classifieds-board/app/server/jwt"
	"classifieds-board/app/server/models"
	"classifieds-board/app/server/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestAdvertisementUpdateZeroPrice(t *testing.T) {
	gormDB, mock := newMockDB(t)

	adID := uuid.New()
	userID := uuid.New()
	subID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "advertisements"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created", "updated", "title", "text", "price", "user_id", "subcategory_id"}).
			AddRow(adID.String(), now, now, "City bike", "barely used", int64(1500), userID.String(), subID.String()))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created", "nickname", "role"}).
			AddRow(userID.String(), now, "alice", "user"))
	mock.ExpectQuery(`SELECT \* FROM "subcategories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created", "name", "category_id"}).
			AddRow(subID.String(), now, "bikes", uuid.New().String()))

	// 价格清零时 price 列必须出现在 UPDATE 中
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "advertisements" SET .*"price".*WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body, err := json.Marshal(&types.AdvertisementInput{
		Title:         "City bike",
		Text:          "barely used, free to a good home",
		Price:         0,
		SubcategoryID: subID,
	})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/advertisements/"+adID.String(), bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(adID.String())
	c.Set("authUser", &jwt.User{ID: userID, Nickname: "alice", Role: models.RoleUser})

	a := NewApp(zap.NewNop(), gormDB, nil, nil, nil, "")
	require.NoError(t, a.AdvertisementUpdate(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var res types.AdvertisementInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.EqualValues(t, 0, res.Price)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvertisementListShowAll(t *testing.T) {
	gormDB, mock := newMockDB(t)

	adID := uuid.New()
	userID := uuid.New()
	subID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "advertisements"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created", "updated", "title", "text", "price", "user_id", "subcategory_id"}).
			AddRow(adID.String(), now, now, "City bike", "barely used", int64(1500), userID.String(), subID.String()))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created", "nickname", "role"}).
			AddRow(userID.String(), now, "alice", "user"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "advertisements"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/advertisements?page=0&limit=0", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	a := NewApp(zap.NewNop(), gormDB, nil, nil, nil, "")
	require.NoError(t, a.AdvertisementList(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var res types.AdvertisementListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	// 展示全部时 limit 返回 -1
	assert.Equal(t, -1, res.Limit)
	assert.EqualValues(t, 1, res.PageMax)
	assert.Len(t, res.List, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}
