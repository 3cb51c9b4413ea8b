package types

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"
)

type SignUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Nickname        string `json:"nickname"`
}

func (r SignUpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 128)),
		validation.Field(&r.ConfirmPassword, validation.Required),
		validation.Field(&r.Nickname, validation.Required, validation.Length(2, 64)),
	)
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r SignInRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type ChangePasswordRequest struct {
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(8, 128)),
		validation.Field(&r.ConfirmNewPassword, validation.Required),
	)
}

type BlockRequest struct {
	IsBlocked *bool `json:"isBlocked"`
}

// AccountCreated 是注册成功的响应，不包含任何密码数据
type AccountCreated struct {
	ID uuid.UUID `json:"id"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type BlockStatus struct {
	ID        uuid.UUID `json:"id"`
	IsBlocked bool      `json:"isBlocked"`
}

type AccountInfo struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Created   time.Time `json:"created"`
	IsBlocked bool      `json:"isBlocked"`
	UserID    uuid.UUID `json:"userId"`
	Nickname  string    `json:"nickname"`
	Role      string    `json:"role"`
}

type AccountListResponse struct {
	Limit   int           `json:"limit"`
	PageMax int64         `json:"pageMax"`
	List    []AccountInfo `json:"list"`
}
