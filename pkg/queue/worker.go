package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"arcana/app/models/reading"
	"arcana/app/services"
	"arcana/pkg/logger"

	"go.uber.org/zap"
)

// ReadingCreator 生成解读并保存记录
type ReadingCreator interface {
	Create(ctx context.Context, req services.SpreadRequest, owner services.Owner) (*reading.Reading, error)
}

// WorkerConfig 工作器配置
type WorkerConfig struct {
	WorkerCount     int           // 并发工作器数量
	TaskTimeout     time.Duration // 单个任务的处理上限
	PollWait        time.Duration // 每次阻塞取任务的等待时长
	ShutdownTimeout time.Duration // 关闭超时时间
}

// Worker 队列工作器组
type Worker struct {
	queue   Queue
	creator ReadingCreator
	metrics *QueueMetrics
	config  WorkerConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWorker 创建新的工作器组
func NewWorker(q Queue, creator ReadingCreator, metrics *QueueMetrics, config WorkerConfig) *Worker {
	if config.WorkerCount <= 0 {
		config.WorkerCount = 4
	}
	if config.TaskTimeout <= 0 {
		config.TaskTimeout = 2 * time.Minute
	}
	if config.PollWait <= 0 {
		config.PollWait = time.Second
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = 30 * time.Second
	}
	if metrics == nil {
		metrics = NewQueueMetrics()
	}

	return &Worker{
		queue:   q,
		creator: creator,
		metrics: metrics,
		config:  config,
	}
}

// Start 启动工作器组
func (w *Worker) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	for i := 0; i < w.config.WorkerCount; i++ {
		w.wg.Add(1)
		go w.run(ctx, i)
	}
}

// run 单个工作器的循环，ctx 取消后不再取新任务，正在处理的任务会继续完成
func (w *Worker) run(ctx context.Context, id int) {
	defer w.wg.Done()

	logger.InfoString("Worker", "Start", fmt.Sprintf("Worker %d started", id))

	for {
		if ctx.Err() != nil {
			logger.InfoString("Worker", "Stop", fmt.Sprintf("Worker %d stopping", id))
			return
		}

		task, err := w.queue.Pop(ctx, w.config.PollWait)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			w.metrics.RecordError(OpPop)
			logger.Error("Worker", zap.Int("worker", id), zap.Error(err))
			// 错误恢复延迟
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
			}
			continue
		}
		if task == nil {
			continue
		}

		w.metrics.RecordSuccess(OpPop)
		w.handleTask(task)
	}
}

// handleTask 处理单个任务：running → 解读并保存 → completed / failed
func (w *Worker) handleTask(task *ReadingTask) {
	start := time.Now()
	w.metrics.EndWaitTime(TaskID(task.ID))

	ctx, cancel := context.WithTimeout(context.Background(), w.config.TaskTimeout)
	defer cancel()

	task.Status = TaskRunning
	if err := w.queue.Update(ctx, task); err != nil {
		logger.Error("Worker", zap.String("task_id", task.ID), zap.Error(err))
	}

	rd, err := w.creator.Create(ctx, task.Request(), task.Owner())
	if err != nil {
		w.metrics.RecordError(OpProcess)
		task.Status = TaskFailed
		task.Error = err.Error()
		logger.Warn("Worker", zap.String("task_id", task.ID), zap.Error(err))
	} else {
		w.metrics.RecordSuccess(OpProcess)
		task.Status = TaskCompleted
		task.ReadingID = rd.ID
		logger.Info("Worker", zap.String("task_id", task.ID), zap.String("reading_id", rd.ID))
	}
	w.metrics.RecordProcessLatency(time.Since(start))

	if err := w.queue.Update(ctx, task); err != nil {
		logger.Error("Worker", zap.String("task_id", task.ID), zap.Error(err))
	}
}

// Stop 优雅关闭工作器组
func (w *Worker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()

	// 等待所有工作器完成
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.InfoString("Worker", "Stop", "All workers stopped gracefully")
	case <-time.After(w.config.ShutdownTimeout):
		logger.WarnString("Worker", "Stop", "Worker shutdown timed out")
	}
}
