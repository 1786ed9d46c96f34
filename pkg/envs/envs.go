package envs

import (
	"path/filepath"

	"github.com/binjuhor/likepost/pkg/common/runmode"
	"github.com/binjuhor/likepost/pkg/utils/envx"
	"github.com/binjuhor/likepost/pkg/utils/pathx"
)

// 以下变量值可通过环境变量指定
var (
	// BaseDir 项目根目录
	BaseDir = envx.Get("BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../.."))

	// SiteName 站点名称（用于通知邮件标题）
	SiteName = envx.Get("SITE_NAME", "binjuhor's blog")

	// Domain 站点域名（用于拼接文章链接）
	Domain = envx.Get("DOMAIN", "binjuhor.com")

	// DomainScheme 站点域名协议
	DomainScheme = envx.Get("DOMAIN_SCHEME", "https")

	// ServerPort web 服务启用端口
	ServerPort = envx.Get("SERVER_PORT", "8080")

	// GinRunMode web 服务运行模式
	GinRunMode = envx.Get("GIN_RUN_MODE", runmode.Release)

	// PostDataBaseDir 文章元数据存放目录
	PostDataBaseDir = envx.Get("POST_DATA_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../data"))

	// LogFileBaseDir 日志存放目录
	LogFileBaseDir = envx.Get("LOG_FILE_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../logs"))

	// LogLevel 日志等级（panic/fatal/error/warn/info/debug/trace）
	LogLevel = envx.Get("LOG_LEVEL", "info")

	// AdminEmail 管理员邮箱（点赞通知收件人）
	AdminEmail = envx.Get("ADMIN_EMAIL", "admin@binjuhor.com")

	// RateLimitSeconds 同一访客对同一文章的点赞冷却时间（秒）
	RateLimitSeconds = envx.GetInt("LIKE_RATE_LIMIT_SECONDS", 60)

	// NotifyTimeoutSeconds 通知发送超时时间（秒）
	NotifyTimeoutSeconds = envx.GetInt("NOTIFY_TIMEOUT_SECONDS", 10)

	// RealClientIPHeaderKey 客户端真实 IP 请求头（由接入层设置时指定）
	RealClientIPHeaderKey = envx.Get("REAL_CLIENT_IP_HEADER_KEY", "")

	// JWTSigningKey 用户态 Token 签名密钥（为空则所有请求按匿名处理）
	JWTSigningKey = envx.Get("JWT_SIGNING_KEY", "")
)

// Mysql 相关配置
var (
	// MysqlHost ...
	MysqlHost = envx.Get("MYSQL_HOST", "127.0.0.1")

	// MysqlPort ...
	MysqlPort = envx.Get("MYSQL_PORT", "3306")

	// MysqlUser ...
	MysqlUser = envx.Get("MYSQL_USER", "root")

	// MysqlPassword ...
	MysqlPassword = envx.Get("MYSQL_PASSWORD", "")

	// MysqlDatabase ...
	MysqlDatabase = envx.Get("MYSQL_DATABASE", "likepost")

	// MysqlCharSet ...
	MysqlCharSet = envx.Get("MYSQL_CHARSET", "utf8mb4")
)

// Redis 相关配置（可选，未配置时限流器退化为进程内实现）
var (
	// RedisAddr ...
	RedisAddr = envx.Get("REDIS_ADDR", "")

	// RedisPassword ...
	RedisPassword = envx.Get("REDIS_PASSWORD", "")

	// RedisDB ...
	RedisDB = envx.GetInt("REDIS_DB", 0)
)

// RabbitMQ 相关配置（可选，未配置时通知仅打印日志）
var (
	// RabbitMQUrl ...
	RabbitMQUrl = envx.Get("RABBITMQ_URL", "")

	// RabbitMQQueue 点赞通知队列名
	RabbitMQQueue = envx.Get("RABBITMQ_QUEUE", "like.notify.queue")
)
