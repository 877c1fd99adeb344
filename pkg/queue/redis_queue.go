package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"arcana/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

// Queue 任务队列，Pop 在超时内没有任务时返回 nil, nil
type Queue interface {
	Push(ctx context.Context, task *ReadingTask) error
	Pop(ctx context.Context, wait time.Duration) (*ReadingTask, error)
	Update(ctx context.Context, task *ReadingTask) error
	Get(ctx context.Context, taskID string) (*ReadingTask, error)
	Ping(ctx context.Context) error
}

// RedisQueue Redis 队列服务
// 待处理任务保存在 <prefix>:tasks 列表中，任务状态保存在 <prefix>:task:<id>
type RedisQueue struct {
	client  *redis.RedisClient
	prefix  string
	timeout time.Duration
	metrics *QueueMetrics
}

// NewRedisQueue 创建队列服务，ttl 为任务状态的保存时长
func NewRedisQueue(client *redis.RedisClient, prefix string, ttl time.Duration, metrics *QueueMetrics) *RedisQueue {
	if metrics == nil {
		metrics = NewQueueMetrics()
	}
	return &RedisQueue{
		client:  client,
		prefix:  prefix,
		timeout: ttl,
		metrics: metrics,
	}
}

func (q *RedisQueue) listKey() string {
	return fmt.Sprintf("%s:tasks", q.prefix)
}

func (q *RedisQueue) taskKey(taskID string) string {
	return fmt.Sprintf("%s:task:%s", q.prefix, taskID)
}

// Push 保存任务状态并推入队列
func (q *RedisQueue) Push(ctx context.Context, task *ReadingTask) error {
	start := time.Now()
	defer func() {
		q.metrics.RecordPushLatency(time.Since(start))
	}()

	taskJSON, err := json.Marshal(task)
	if err != nil {
		q.metrics.RecordError(OpPush)
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	// 使用事务确保原子性
	pipe := q.client.Client.TxPipeline()
	pipe.Set(ctx, q.taskKey(task.ID), taskJSON, q.timeout)
	pipe.LPush(ctx, q.listKey(), taskJSON)
	if _, err := pipe.Exec(ctx); err != nil {
		q.metrics.RecordError(OpPush)
		return fmt.Errorf("failed to push task: %w", err)
	}

	q.metrics.RecordSuccess(OpPush)
	q.metrics.StartWaitTime(TaskID(task.ID))
	return nil
}

// Pop 阻塞等待任务，最多等待 wait
func (q *RedisQueue) Pop(ctx context.Context, wait time.Duration) (*ReadingTask, error) {
	start := time.Now()
	result, err := q.client.Client.BRPop(ctx, wait, q.listKey()).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop task from queue: %w", err)
	}
	q.metrics.RecordPopLatency(time.Since(start))

	if len(result) != 2 {
		return nil, fmt.Errorf("invalid result from queue")
	}

	var task ReadingTask
	if err := json.Unmarshal([]byte(result[1]), &task); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task: %w", err)
	}
	return &task, nil
}

// Update 覆盖任务状态
func (q *RedisQueue) Update(ctx context.Context, task *ReadingTask) error {
	task.UpdatedAt = time.Now()
	taskJSON, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}
	if err := q.client.Client.Set(ctx, q.taskKey(task.ID), taskJSON, q.timeout).Err(); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	return nil
}

// Get 获取任务，不存在或已过期时返回 nil, nil
func (q *RedisQueue) Get(ctx context.Context, taskID string) (*ReadingTask, error) {
	raw, err := q.client.Client.Get(ctx, q.taskKey(taskID)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	var task ReadingTask
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task: %w", err)
	}
	return &task, nil
}

// Ping 检查队列服务健康状态
func (q *RedisQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx)
}

// Metrics 队列指标
func (q *RedisQueue) Metrics() *QueueMetrics {
	return q.metrics
}
