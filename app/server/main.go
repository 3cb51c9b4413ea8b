package main

import (
	"fmt"
	"log"
	"os"

	"classifieds-board/app/server/handlers"
	"classifieds-board/app/server/inits"
	"classifieds-board/app/server/jwt"
	"classifieds-board/app/server/middlewares"
	"classifieds-board/app/server/repositories/accounts"
	"classifieds-board/app/server/services"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化 JWT ，密钥为空直接失败
	j, err := jwt.New(cfg.Security.JWTSigningKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 初始化附件目录
	if err := os.MkdirAll(cfg.System.UploadDir, 0o755); err != nil {
		l.Fatal("error initializing upload dir", zap.Error(err))
	}

	// 准备账号业务层
	accountRepo := accounts.NewGormRepository(db)
	accountService := services.NewAccountService(accountRepo, j, l)

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, rdb, j, accountService, cfg.System.UploadDir)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 匿名接口
	e.GET("/healthcheck", handlerApp.HealthCheck)
	e.POST("/accounts", handlerApp.AccountSignUp)
	e.POST("/accounts/signin", handlerApp.AccountSignIn, middlewares.SignInRateLimit(rdb, l))
	e.GET("/categories", handlerApp.CategoryList)
	e.GET("/categories/:id", handlerApp.CategoryGet)
	e.GET("/categories/:id/subcategories", handlerApp.SubcategoryListByCategory)
	e.GET("/subcategories/:id", handlerApp.SubcategoryGet)
	e.GET("/advertisements", handlerApp.AdvertisementList)
	e.GET("/advertisements/:id", handlerApp.AdvertisementGet)
	e.GET("/advertisements/:id/comments", handlerApp.CommentListByAdvertisement)
	e.GET("/attachments/:id", handlerApp.AttachmentDownload)

	// 认证接口：echo-jwt 校验签名和有效期，封禁检查实时查询数据库
	authed := e.Group("",
		echojwt.WithConfig(echojwt.Config{
			SigningKey:    j.Key(),
			SigningMethod: "HS512",
		}),
		middlewares.BlockCheck(accountService, l),
	)

	authed.GET("/accounts", handlerApp.AccountList)
	authed.GET("/accounts/current", handlerApp.AccountGetCurrent)
	authed.GET("/accounts/:id", handlerApp.AccountGet)
	authed.PATCH("/accounts/password", handlerApp.AccountPasswordUpdate)
	authed.PATCH("/accounts/:id/block", handlerApp.AccountBlock)
	authed.DELETE("/accounts/:id", handlerApp.AccountDelete)

	authed.POST("/categories", handlerApp.CategoryCreate)
	authed.PUT("/categories/:id", handlerApp.CategoryUpdate)
	authed.DELETE("/categories/:id", handlerApp.CategoryDelete)
	authed.POST("/categories/:id/subcategories", handlerApp.SubcategoryCreate)
	authed.PUT("/subcategories/:id", handlerApp.SubcategoryUpdate)
	authed.DELETE("/subcategories/:id", handlerApp.SubcategoryDelete)

	authed.POST("/advertisements", handlerApp.AdvertisementCreate)
	authed.PUT("/advertisements/:id", handlerApp.AdvertisementUpdate)
	authed.DELETE("/advertisements/:id", handlerApp.AdvertisementDelete)
	authed.POST("/advertisements/:id/comments", handlerApp.CommentCreate)
	authed.DELETE("/comments/:id", handlerApp.CommentDelete)
	authed.POST("/advertisements/:id/attachments", handlerApp.AttachmentUpload)
	authed.DELETE("/attachments/:id", handlerApp.AttachmentDelete)

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
