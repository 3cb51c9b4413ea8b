package accounts

import (
	"context"
	"errors"
	"fmt"

	"classifieds-board/app/server/errs"
	"classifieds-board/app/server/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres 的唯一约束冲突错误码
const pgUniqueViolation = "23505"

type GormRepository struct {
	db *gorm.DB
}

var _ Repository = (*GormRepository)(nil)

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, account *models.Account) error {
	// 关联的用户资料随账号一起写入，冲突由唯一约束裁决
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *GormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Preload("User").First(&account, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &account, nil
}

func (r *GormRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Preload("User").First(&account, "email = ?", email).Error; err != nil {
		return nil, mapErr(err)
	}
	return &account, nil
}

func (r *GormRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Preload("User").First(&account, "user_id = ?", userID).Error; err != nil {
		return nil, mapErr(err)
	}
	return &account, nil
}

func (r *GormRepository) EmailOrNicknameTaken(ctx context.Context, email string, nickname string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count accounts: %w", err)
	}
	if count > 0 {
		return true, nil
	}

	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("nickname = ?", nickname).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return count > 0, nil
}

func (r *GormRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return mapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *GormRepository) SetBlocked(ctx context.Context, id uuid.UUID, isBlocked bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Update("is_blocked", isBlocked)
	if res.Error != nil {
		return mapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// 先找到关联的用户，删除用户后账号（以及用户的广告、评论）由外键级联删除
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.First(&account, "id = ?", id).Error; err != nil {
			return mapErr(err)
		}
		if err := tx.Delete(&models.User{}, "id = ?", account.UserID).Error; err != nil {
			return mapErr(err)
		}
		return nil
	})
}

func (r *GormRepository) List(ctx context.Context, offset int, limit int) ([]models.Account, error) {
	var accounts []models.Account
	query := r.db.WithContext(ctx).Preload("User").Order("created ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Account{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return count, nil
}

// mapErr 把存储层错误翻译成业务分类错误
func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return errs.ErrAlreadyExists
	}

	return err
}
