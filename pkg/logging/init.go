package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/binjuhor/likepost/pkg/envs"
)

var initOnce sync.Once

// 注：虽然 zap 性能更好，不过 logrus 展示效果较好
// 点赞服务的写入量级不高，性能要求有限，先用 logrus 吧

// 访问日志
var accessLogger *logrus.Logger

// sql 日志
var sqlLogger *logrus.Logger

// 通知日志（点赞通知投递结果）
var notifyLogger *logrus.Logger

const (
	LogTypeSystem = "system"
	LogTypeAccess = "access"
	LogTypeSql    = "sql"
	LogTypeNotify = "notify"
)

func InitLogger() {
	initSystemLogger()

	initOnce.Do(func() {
		accessLogger = newJsonLogger(LogTypeAccess)
		sqlLogger = newJsonLogger(LogTypeSql)
		notifyLogger = newJsonLogger(LogTypeNotify)
	})
}

func GetSystemLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

func GetAccessLogger() *logrus.Logger {
	if accessLogger == nil {
		return GetSystemLogger()
	}
	return accessLogger
}

func GetSqlLogger() *logrus.Logger {
	if sqlLogger == nil {
		return GetSystemLogger()
	}
	return sqlLogger
}

func GetNotifyLogger() *logrus.Logger {
	if notifyLogger == nil {
		return GetSystemLogger()
	}
	return notifyLogger
}

func initSystemLogger() {
	// 设置日志输出
	writer, err := getWriter(LogTypeSystem)
	if err != nil {
		panic(err)
	}
	logrus.SetOutput(writer)

	// 设置日志格式
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})

	// 设置日志级别
	level, err := logrus.ParseLevel(envs.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func newJsonLogger(logType string) *logrus.Logger {
	logger := logrus.New()
	// 设置日志输出
	writer, err := getWriter(logType)
	if err != nil {
		panic(err)
	}
	logger.SetOutput(writer)

	// 设置日志格式
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.DateTime,
		PrettyPrint:     false,
	})

	// 设置日志级别
	level, err := logrus.ParseLevel(envs.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
