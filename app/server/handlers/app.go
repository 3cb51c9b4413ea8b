package handlers

import (
	"classifieds-board/app/server/jwt"
	"classifieds-board/app/server/services"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l         *zap.Logger              // 日志
	db        *gorm.DB                 // 数据库
	rdb       *redis.Client            // Redis
	jwt       *jwt.JWT                 // JWT ，用于无状态验证
	account   *services.AccountService // 账号业务逻辑
	uploadDir string                   // 附件存储目录
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, account *services.AccountService, uploadDir string) *App {
	return &App{
		l:         l,
		db:        db,
		rdb:       rdb,
		jwt:       j,
		account:   account,
		uploadDir: uploadDir,
	}
}
