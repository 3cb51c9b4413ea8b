package inits

import (
	"classifieds-board/app/server/models"
	"classifieds-board/app/server/password"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.Category{},
		&models.Subcategory{},
		&models.Advertisement{},
		&models.Comment{},
		&models.Attachment{},
	)
}

func initData(db *gorm.DB) (err error) {
	// 查询现有记录数量
	var counter int64

	// 初始化管理员账号
	if err = db.Model(&models.Account{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get account count: %w", err)
	} else if counter == 0 { // 没有任何账号，添加初始管理员
		admin := models.User{
			Nickname: "admin",
			Role:     models.RoleAdministrator,
		}
		if err = db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		// 插入记录，初始密码需要在首次登录后修改
		if err = db.Create(&models.Account{
			Email:        "admin@localhost",
			PasswordHash: password.Hash("password"),
			UserID:       admin.ID,
		}).Error; err != nil {
			return fmt.Errorf("failed to create admin account: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}
