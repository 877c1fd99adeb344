// Package redis 提供 Redis 连接的封装，异步解读队列使用
package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"arcana/pkg/logger"

	redis "github.com/redis/go-redis/v9"
)

// 关键配置常量
const (
	// DefaultPoolSize Redis 连接池大小
	DefaultPoolSize = 20
	// DefaultTimeout 默认操作超时时间
	DefaultTimeout = 5 * time.Second
	// DefaultMinIdleConns 最小空闲连接数
	DefaultMinIdleConns = 2
	// DefaultMaxRetries 最大重试次数
	DefaultMaxRetries = 3
	// DefaultIdleTimeout 空闲超时
	DefaultIdleTimeout = 5 * time.Minute
)

// RedisClient Redis 客户端封装
type RedisClient struct {
	Client *redis.Client
}

// RedisConfig Redis 配置结构
type RedisConfig struct {
	Address      string
	Username     string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	Timeout      time.Duration
}

var (
	once sync.Once
	// Queue 队列使用的全局实例，未启用队列时为 nil
	Queue *RedisClient
)

// ConnectQueue 初始化队列使用的 Redis 连接，只执行一次
func ConnectQueue(cfg RedisConfig) error {
	var err error
	once.Do(func() {
		Queue, err = NewClient(cfg)
	})
	return err
}

// NewClient 创建新的 Redis 客户端并测试连接
func NewClient(cfg RedisConfig) (*RedisClient, error) {
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = DefaultPoolSize
	}
	if cfg.MinIdleConns <= 0 {
		cfg.MinIdleConns = DefaultMinIdleConns
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	rds := &RedisClient{
		Client: redis.NewClient(&redis.Options{
			Addr:         cfg.Address,
			Username:     cfg.Username,
			Password:     cfg.Password,
			DB:           cfg.DB,
			PoolSize:     cfg.PoolSize,
			MinIdleConns: cfg.MinIdleConns,

			// 连接池配置
			PoolTimeout:     cfg.Timeout,
			ConnMaxIdleTime: DefaultIdleTimeout,
			ConnMaxLifetime: 24 * time.Hour,

			// 读写超时，BRPOP 的阻塞时间由调用方单独控制
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,

			// 重试策略
			MaxRetries:      DefaultMaxRetries,
			MinRetryBackoff: 8 * time.Millisecond,
			MaxRetryBackoff: 512 * time.Millisecond,
		}),
	}

	// 测试连接
	if err := rds.Ping(context.Background()); err != nil {
		_ = rds.Client.Close()
		logger.ErrorString("Redis", "Connect", err.Error())
		return nil, fmt.Errorf("redis connect %s: %w", cfg.Address, err)
	}

	return rds, nil
}

// Ping 测试 Redis 连接
func (rds *RedisClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	return rds.Client.Ping(ctx).Err()
}

// Close 关闭连接池
func (rds *RedisClient) Close() error {
	return rds.Client.Close()
}
