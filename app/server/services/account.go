// Package services 承载业务决策逻辑，处在 handler 和 repository 之间。
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classifieds-board/app/server/constants"
	"classifieds-board/app/server/errs"
	"classifieds-board/app/server/jwt"
	"classifieds-board/app/server/models"
	"classifieds-board/app/server/password"
	"classifieds-board/app/server/repositories/accounts"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountService 负责账号生命周期：注册、登录、改密、封禁、删除
type AccountService struct {
	repo accounts.Repository
	jwt  *jwt.JWT
	l    *zap.Logger
}

func NewAccountService(repo accounts.Repository, j *jwt.JWT, l *zap.Logger) *AccountService {
	return &AccountService{
		repo: repo,
		jwt:  j,
		l:    l,
	}
}

type SignUpInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	Nickname        string
}

// SignUp 创建账号及关联的用户资料。
// 两次密码不一致时在任何存储操作之前就失败；
// 预检查通过后仍可能与并发注册竞争，此时以唯一约束的 ErrAlreadyExists 为准。
func (s *AccountService) SignUp(ctx context.Context, in SignUpInput) (*models.Account, error) {
	if err := password.Compare(in.Password, in.ConfirmPassword); err != nil {
		return nil, err
	}

	taken, err := s.repo.EmailOrNicknameTaken(ctx, in.Email, in.Nickname)
	if err != nil {
		return nil, fmt.Errorf("check existing account: %w", err)
	}
	if taken {
		return nil, errs.ErrAlreadyExists
	}

	account := &models.Account{
		Email:        in.Email,
		PasswordHash: password.Hash(in.Password),
		User: models.User{
			Nickname: in.Nickname,
			Role:     models.RoleUser,
		},
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// SignIn 校验凭据并签发令牌。
// 邮箱不存在和密码错误返回同一个 ErrInvalidCredentials ，不暴露账号是否存在。
func (s *AccountService) SignIn(ctx context.Context, email string, pass string) (string, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", errs.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find account: %w", err)
	}

	if err := password.VerifyCredential(account.PasswordHash, pass); err != nil {
		return "", err
	}

	// 签出 JWT
	expires := time.Now().Add(constants.AuthTokenDuration)
	token, err := s.jwt.SignToken(&jwt.User{
		ID:        account.UserID,
		Nickname:  account.User.Nickname,
		Role:      account.User.Role,
		IsBlocked: account.IsBlocked,
		Expires:   expires.Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

// ChangePassword 修改密码：先校验旧密码，再校验两次新密码一致，全部通过才写入
func (s *AccountService) ChangePassword(ctx context.Context, userID uuid.UUID, current string, newPass string, confirmNew string) error {
	account, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if err := password.VerifyCredential(account.PasswordHash, current); err != nil {
		return err
	}

	if err := password.Compare(newPass, confirmNew); err != nil {
		return err
	}

	return s.repo.UpdatePasswordHash(ctx, account.ID, password.Hash(newPass))
}

// BlockByID 设置封禁标记，重复设置同一个值不报错（幂等）
func (s *AccountService) BlockByID(ctx context.Context, id uuid.UUID, isBlocked bool) (bool, error) {
	if err := s.repo.SetBlocked(ctx, id, isBlocked); err != nil {
		return false, err
	}
	return isBlocked, nil
}

// DeleteByID 硬删除账号，级联删除用户资料
func (s *AccountService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// IsBlocked 查询实时封禁状态（给中间件用，不信任令牌里的快照）
func (s *AccountService) IsBlocked(ctx context.Context, userID uuid.UUID) (bool, error) {
	account, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return account.IsBlocked, nil
}

func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AccountService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Account, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *AccountService) List(ctx context.Context, offset int, limit int) ([]models.Account, int64, error) {
	accounts, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return accounts, count, nil
}
