package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"classifieds-board/app/server/errs"
	"classifieds-board/app/server/jwt"
	"classifieds-board/app/server/models"
	"classifieds-board/app/server/services"
	"classifieds-board/app/server/types"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// accountPageRepo 只支撑列表路径，记录收到的分页参数
type accountPageRepo struct {
	accounts []models.Account

	lastOffset int
	lastLimit  int
}

func (r *accountPageRepo) Create(_ context.Context, _ *models.Account) error { return nil }

func (r *accountPageRepo) GetByID(_ context.Context, _ uuid.UUID) (*models.Account, error) {
	return nil, errs.ErrNotFound
}

func (r *accountPageRepo) GetByEmail(_ context.Context, _ string) (*models.Account, error) {
	return nil, errs.ErrNotFound
}

func (r *accountPageRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*models.Account, error) {
	return nil, errs.ErrNotFound
}

func (r *accountPageRepo) EmailOrNicknameTaken(_ context.Context, _ string, _ string) (bool, error) {
	return false, nil
}

func (r *accountPageRepo) UpdatePasswordHash(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

func (r *accountPageRepo) SetBlocked(_ context.Context, _ uuid.UUID, _ bool) error { return nil }

func (r *accountPageRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *accountPageRepo) List(_ context.Context, offset int, limit int) ([]models.Account, error) {
	r.lastOffset, r.lastLimit = offset, limit
	return r.accounts, nil
}

func (r *accountPageRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.accounts)), nil
}

func newAccountListApp(t *testing.T, repo *accountPageRepo) *App {
	t.Helper()

	j, err := jwt.New("test-signing-key")
	require.NoError(t, err)

	return NewApp(zap.NewNop(), nil, nil, nil, services.NewAccountService(repo, j, zap.NewNop()), "")
}

func accountListContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("authUser", &jwt.User{ID: uuid.New(), Nickname: "root", Role: models.RoleAdministrator})
	return c, rec
}

func TestAccountListShowAll(t *testing.T) {
	repo := &accountPageRepo{accounts: []models.Account{
		{ID: uuid.New(), Email: "alice@example.com", UserID: uuid.New(), User: models.User{Nickname: "alice", Role: models.RoleUser}},
		{ID: uuid.New(), Email: "bob@example.com", UserID: uuid.New(), User: models.User{Nickname: "bob", Role: models.RoleUser}},
	}}
	a := newAccountListApp(t, repo)

	c, rec := accountListContext("/accounts?page=0&limit=0")
	require.NoError(t, a.AccountList(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var res types.AccountListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	// 展示全部时 limit 返回 -1 ，与广告列表保持一致
	assert.Equal(t, -1, res.Limit)
	assert.EqualValues(t, 1, res.PageMax)
	assert.Len(t, res.List, 2)

	// 仓库收到的是不带分页限制的查询
	assert.Equal(t, 0, repo.lastOffset)
	assert.Equal(t, 0, repo.lastLimit)
}

func TestAccountListPaged(t *testing.T) {
	repo := &accountPageRepo{accounts: []models.Account{
		{ID: uuid.New(), Email: "alice@example.com", UserID: uuid.New(), User: models.User{Nickname: "alice", Role: models.RoleUser}},
	}}
	a := newAccountListApp(t, repo)

	c, rec := accountListContext("/accounts?page=2&limit=20")
	require.NoError(t, a.AccountList(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var res types.AccountListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, 20, res.Limit)
	assert.EqualValues(t, 1, res.PageMax)

	assert.Equal(t, 20, repo.lastOffset)
	assert.Equal(t, 20, repo.lastLimit)
}

func TestAccountListRequiresAdministrator(t *testing.T) {
	a := newAccountListApp(t, &accountPageRepo{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("authUser", &jwt.User{ID: uuid.New(), Nickname: "alice", Role: models.RoleUser})

	require.NoError(t, a.AccountList(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
