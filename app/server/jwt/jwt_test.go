package jwt

import (
	"strings"
	"testing"
	"time"

	"classifieds-board/app/server/models"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-signing-key"

func testUser() *User {
	return &User{
		ID:        uuid.New(),
		Nickname:  "tester",
		Role:      models.RoleModerator,
		IsBlocked: false,
		Expires:   time.Now().Add(24 * time.Hour).Unix(),
	}
}

func TestNewEmptyKey(t *testing.T) {
	_, err := New("")
	require.Error(t, err)

	_, err = New("   ")
	require.Error(t, err)
}

func TestSignAndParse(t *testing.T) {
	j, err := New(testKey)
	require.NoError(t, err)

	user := testUser()
	token, err := j.SignToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// JWT 结构：三段点分
	assert.Len(t, strings.Split(token, "."), 3)

	parsed, err := j.ParseUser(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed.ID)
	assert.Equal(t, user.Nickname, parsed.Nickname)
	assert.Equal(t, user.Role, parsed.Role)
	assert.Equal(t, user.IsBlocked, parsed.IsBlocked)
	assert.Equal(t, user.Expires, parsed.Expires)
}

func TestParseEmptyToken(t *testing.T) {
	j, err := New(testKey)
	require.NoError(t, err)

	_, err = j.ParseUser("")
	require.Error(t, err)
}

func TestParseWrongKey(t *testing.T) {
	j1, err := New(testKey)
	require.NoError(t, err)
	j2, err := New("another-signing-key")
	require.NoError(t, err)

	token, err := j1.SignToken(testUser())
	require.NoError(t, err)

	_, err = j2.ParseUser(token)
	require.Error(t, err)
}

func TestParseExpiredToken(t *testing.T) {
	j, err := New(testKey)
	require.NoError(t, err)

	user := testUser()
	user.Expires = time.Now().Add(-time.Hour).Unix()

	token, err := j.SignToken(user)
	require.NoError(t, err)

	_, err = j.ParseUser(token)
	require.Error(t, err)
}

func TestParseRejectsOtherSigningMethod(t *testing.T) {
	j, err := New(testKey)
	require.NoError(t, err)

	// 同一个密钥但使用 HS256 签名的令牌不应被接受
	claims := gojwt.MapClaims{
		"sub":       uuid.New().String(),
		"role":      string(models.RoleUser),
		"isBlocked": "false",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = j.ParseUser(token)
	require.Error(t, err)
}

func TestParseRejectsUnknownRole(t *testing.T) {
	j, err := New(testKey)
	require.NoError(t, err)

	claims := gojwt.MapClaims{
		"sub":       uuid.New().String(),
		"role":      "superuser",
		"isBlocked": "false",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = j.ParseUser(token)
	require.Error(t, err)
}

func TestIsBlockedClaimIsString(t *testing.T) {
	j, err := New(testKey)
	require.NoError(t, err)

	user := testUser()
	user.IsBlocked = true

	tokenString, err := j.SignToken(user)
	require.NoError(t, err)

	// 快照声明以字符串形式编码
	token, err := gojwt.Parse(tokenString, func(token *gojwt.Token) (interface{}, error) {
		return []byte(testKey), nil
	}, gojwt.WithValidMethods([]string{gojwt.SigningMethodHS512.Alg()}))
	require.NoError(t, err)

	claims, ok := token.Claims.(gojwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "true", claims["isBlocked"])
}
