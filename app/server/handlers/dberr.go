package handlers

import (
	"errors"

	"classifieds-board/app/server/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres 的唯一约束冲突错误码
const pgUniqueViolation = "23505"

// dbErr 把 gorm / Postgres 错误翻译成业务分类错误，方便 erClassified 统一映射
func dbErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return errs.ErrAlreadyExists
	}

	return err
}
