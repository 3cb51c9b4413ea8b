package accounts

import (
	"context"

	"classifieds-board/app/server/models"

	"github.com/google/uuid"
)

// Repository 是账号聚合的存储边界。实现返回 errs 包中的分类错误：
// 记录不存在 → errs.ErrNotFound ，唯一约束冲突 → errs.ErrAlreadyExists 。
type Repository interface {
	// Create 创建账号及其关联的用户资料
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Account, error)
	// EmailOrNicknameTaken 检查邮箱或昵称是否已被占用。
	// 只是预检查，不保证原子性，最终以数据库唯一约束为准。
	EmailOrNicknameTaken(ctx context.Context, email string, nickname string) (bool, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetBlocked(ctx context.Context, id uuid.UUID, isBlocked bool) error
	// Delete 硬删除账号并级联删除关联的用户资料
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset int, limit int) ([]models.Account, error)
	Count(ctx context.Context) (int64, error)
}
