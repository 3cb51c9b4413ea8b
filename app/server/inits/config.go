package inits

import (
	"classifieds-board/app/server/config"
	"classifieds-board/app/server/constants"
	"fmt"
	"os"
	"strings"
)

func Config() (cfg *config.Config, err error) {
	// 手动配置映射，必填项缺失时直接报错，让进程在启动阶段失败而不是第一次用到时才失败
	cfg = &config.Config{}

	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if uploadDir, exist := os.LookupEnv("UPLOAD_DIR"); !exist {
		cfg.System.UploadDir = constants.UploadDirDefault // 默认附件目录
	} else {
		cfg.System.UploadDir = uploadDir
	}

	if sigsk, exist := os.LookupEnv("JWT_SIGNING_KEY"); !exist || strings.TrimSpace(sigsk) == "" {
		return nil, fmt.Errorf("JWT_SIGNING_KEY environment variable not set")
	} else {
		cfg.Security.JWTSigningKey = sigsk
	}

	return cfg, nil
}
