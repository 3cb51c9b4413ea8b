package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"classifieds-board/app/server/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWT struct {
	key []byte
}

// User 是令牌中携带的身份声明
type User struct {
	ID        uuid.UUID   // 用户 ID （ sub ）
	Nickname  string      // 昵称（ name ）
	Role      models.Role // 角色（ role ）
	IsBlocked bool        // 封禁标记的签发时快照（ isBlocked ），实时状态以中间件查询为准
	Expires   int64       // Unix second
}

func New(key string) (*JWT, error) {
	if len(strings.TrimSpace(key)) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

// Key 提供给 echo-jwt 中间件使用的签名密钥
func (j *JWT) Key() []byte {
	return j.key
}

func (j *JWT) ParseUser(tokenString string) (*User, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	// 映射字段
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	// 匹配内容
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return userFromClaims(claims)
	}

	return nil, fmt.Errorf("invalid token")
}

func (j *JWT) SignToken(user *User) (string, error) {
	// 创建声明
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"name":      user.Nickname,
		"role":      string(user.Role),
		"isBlocked": strconv.FormatBool(user.IsBlocked),
		"nbf":       time.Now().Unix(),
		"exp":       user.Expires,
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	// 签名并返回
	return token.SignedString(j.key)
}

func userFromClaims(claims jwt.MapClaims) (*User, error) {
	user := &User{}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("missing sub claim")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid sub claim: %w", err)
	}
	user.ID = id

	if name, ok := claims["name"].(string); ok {
		user.Nickname = name
	}

	role, ok := claims["role"].(string)
	if !ok || !models.Role(role).Valid() {
		return nil, fmt.Errorf("invalid role claim")
	}
	user.Role = models.Role(role)

	if blocked, ok := claims["isBlocked"].(string); ok {
		user.IsBlocked, _ = strconv.ParseBool(blocked)
	}

	if exp, ok := claims["exp"].(float64); ok {
		user.Expires = int64(exp)
	}

	return user, nil
}
