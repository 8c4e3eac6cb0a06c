package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/The-Hackers-Corner/thc-website/config"
)

var RDB *redis.Client
var Ctx = context.Background()

// InitRedis 未配置地址时跳过，RDB 保持为 nil，缓存层自动禁用
func InitRedis(cfg *config.Config) {
	if cfg.Redis.Addr == "" {
		log.Println("Redis not configured, leaderboard cache disabled.")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RDB.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	log.Println("Redis connection successfully established.")
}
