package queue

import (
	"sync"
	"sync/atomic"
	"time"
)

// TaskID 任务ID的类型别名
type TaskID string

// MetricOperation 定义指标操作类型
type MetricOperation string

const (
	OpPush    MetricOperation = "push"
	OpPop     MetricOperation = "pop"
	OpProcess MetricOperation = "process"
)

// LatencyStats 延迟统计
type LatencyStats struct {
	mu    sync.Mutex
	count int64
	total time.Duration
	min   time.Duration
	max   time.Duration
}

// LatencySnapshot 延迟统计快照
type LatencySnapshot struct {
	Count int64 `json:"count"`
	AvgMs int64 `json:"avg_ms"`
	MinMs int64 `json:"min_ms"`
	MaxMs int64 `json:"max_ms"`
}

// QueueMetrics 队列指标收集器，并发安全
type QueueMetrics struct {
	successful sync.Map // map[MetricOperation]*atomic.Int64
	failed     sync.Map

	pushLatency    LatencyStats
	popLatency     LatencyStats
	processLatency LatencyStats

	waitCount     atomic.Int64
	waitTotalMs   atomic.Int64
	waitTimeStart sync.Map // map[TaskID]time.Time
}

// MetricsSnapshot 指标快照，用于健康检查输出
type MetricsSnapshot struct {
	Successful map[MetricOperation]int64 `json:"successful"`
	Failed     map[MetricOperation]int64 `json:"failed"`
	Push       LatencySnapshot           `json:"push_latency"`
	Pop        LatencySnapshot           `json:"pop_latency"`
	Process    LatencySnapshot           `json:"process_latency"`
	AvgWaitMs  int64                     `json:"avg_wait_ms"`
}

// NewQueueMetrics 创建新的指标收集器
func NewQueueMetrics() *QueueMetrics {
	return &QueueMetrics{}
}

// RecordSuccess 记录成功操作
func (m *QueueMetrics) RecordSuccess(op MetricOperation) {
	counter(&m.successful, op).Add(1)
}

// RecordError 记录失败操作
func (m *QueueMetrics) RecordError(op MetricOperation) {
	counter(&m.failed, op).Add(1)
}

// StartWaitTime 记录任务开始等待的时间
func (m *QueueMetrics) StartWaitTime(taskID TaskID) {
	m.waitTimeStart.Store(taskID, time.Now())
}

// EndWaitTime 任务被取出时累计等待时间，只统计本进程推入的任务
func (m *QueueMetrics) EndWaitTime(taskID TaskID) {
	if start, ok := m.waitTimeStart.LoadAndDelete(taskID); ok {
		m.waitTotalMs.Add(time.Since(start.(time.Time)).Milliseconds())
		m.waitCount.Add(1)
	}
}

// RecordPushLatency 记录推送延迟
func (m *QueueMetrics) RecordPushLatency(d time.Duration) {
	m.pushLatency.record(d)
}

// RecordPopLatency 记录获取延迟
func (m *QueueMetrics) RecordPopLatency(d time.Duration) {
	m.popLatency.record(d)
}

// RecordProcessLatency 记录处理延迟
func (m *QueueMetrics) RecordProcessLatency(d time.Duration) {
	m.processLatency.record(d)
}

// Snapshot 当前指标
func (m *QueueMetrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Successful: counters(&m.successful),
		Failed:     counters(&m.failed),
		Push:       m.pushLatency.snapshot(),
		Pop:        m.popLatency.snapshot(),
		Process:    m.processLatency.snapshot(),
	}
	if n := m.waitCount.Load(); n > 0 {
		s.AvgWaitMs = m.waitTotalMs.Load() / n
	}
	return s
}

func counter(m *sync.Map, op MetricOperation) *atomic.Int64 {
	v, _ := m.LoadOrStore(op, new(atomic.Int64))
	return v.(*atomic.Int64)
}

func counters(m *sync.Map) map[MetricOperation]int64 {
	out := map[MetricOperation]int64{}
	m.Range(func(k, v any) bool {
		out[k.(MetricOperation)] = v.(*atomic.Int64).Load()
		return true
	})
	return out
}

// record 记录延迟数据
func (s *LatencyStats) record(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.count++
	s.total += d
	if s.min == 0 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
}

func (s *LatencyStats) snapshot() LatencySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.count == 0 {
		return LatencySnapshot{}
	}
	return LatencySnapshot{
		Count: s.count,
		AvgMs: (s.total / time.Duration(s.count)).Milliseconds(),
		MinMs: s.min.Milliseconds(),
		MaxMs: s.max.Milliseconds(),
	}
}
