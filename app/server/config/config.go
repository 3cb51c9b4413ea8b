package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串
		UploadDir             string // 附件文件的存储目录
	}
	Security struct {
		JWTSigningKey string // 签名密钥，用于签发 JWT ，缺失时启动直接失败；更新会导致旧有会话失效，但不影响使用
	}
}
