package cache

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/binjuhor/likepost/pkg/envs"
	"github.com/binjuhor/likepost/pkg/logging"
)

var (
	rds         *redis.Client
	rdsInitOnce sync.Once
)

// Client 获取 Redis 客户端
func Client() *redis.Client {
	if rds == nil {
		log.Fatal("redis client not init")
	}
	return rds
}

// Enabled Redis 是否已配置
func Enabled() bool {
	return envs.RedisAddr != ""
}

// InitRedisClient 初始化 Redis 客户端，未配置时跳过
func InitRedisClient(ctx context.Context) {
	if !Enabled() || rds != nil {
		return
	}
	rdsInitOnce.Do(func() {
		client := redis.NewClient(&redis.Options{
			Addr:     envs.RedisAddr,
			Password: envs.RedisPassword,
			DB:       envs.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect redis %s: %s", envs.RedisAddr, err)
		}
		rds = client
		logging.GetSystemLogger().Infof("redis: %s connected", envs.RedisAddr)
	})
}
