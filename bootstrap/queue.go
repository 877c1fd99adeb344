package bootstrap

import (
	"time"

	"arcana/pkg/config"
	"arcana/pkg/logger"
	"arcana/pkg/queue"
	"arcana/pkg/redis"
)

// SetupQueue 未开启 queue.enabled 时返回 nil, nil，异步接口随之响应 503
// Redis 连接失败时同样降级，并记录错误
func SetupQueue(readings queue.ReadingCreator) (*queue.RedisQueue, *queue.Worker) {
	if !config.GetBool("queue.enabled") {
		logger.InfoString("Queue", "Setup", "异步队列未开启")
		return nil, nil
	}

	if err := SetupRedis(); err != nil {
		logger.ErrorString("Queue", "Setup", "Redis 连接失败，异步队列不可用："+err.Error())
		return nil, nil
	}

	metrics := queue.NewQueueMetrics()
	q := queue.NewRedisQueue(
		redis.Queue,
		config.GetString("redis.queue_prefix", "arcana:queue"),
		time.Duration(config.GetInt("redis.queue_timeout", 3600))*time.Second,
		metrics,
	)

	worker := queue.NewWorker(q, readings, metrics, queue.WorkerConfig{
		WorkerCount: config.GetInt("queue.worker_count", 4),
		TaskTimeout: time.Duration(config.GetInt("queue.task_timeout", 120)) * time.Second,
	})
	worker.Start()

	logger.InfoString("Queue", "Setup", "队列服务启动成功")
	return q, worker
}
