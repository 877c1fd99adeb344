package bootstrap

import (
	"fmt"

	"arcana/pkg/config"
	"arcana/pkg/redis"
)

// SetupRedis 初始化队列使用的 Redis 连接
func SetupRedis() error {
	return redis.ConnectQueue(redis.RedisConfig{
		Address:  fmt.Sprintf("%v:%v", config.GetString("redis.host"), config.GetString("redis.port")),
		Username: config.GetString("redis.username"),
		Password: config.GetString("redis.password"),
		DB:       config.GetInt("redis.queue_database"),
	})
}
