package envx

import (
	"os"
	"strconv"
)

// Get 获取环境变量值，若不存在则返回默认值
func Get(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetInt 获取整数类型环境变量值，若不存在或解析失败则返回默认值
func GetInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	}
	return defaultValue
}
