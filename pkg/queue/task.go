// Package queue 异步解读任务：Redis 列表作为队列，工作池消费
package queue

import (
	"time"

	"arcana/app/services"
	"arcana/pkg/tarot"

	"github.com/google/uuid"
)

// TaskStatus 任务状态
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskRunning   TaskStatus = "running"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

// ReadingTask 解读任务，完成后 ReadingID 指向已保存的记录
type ReadingTask struct {
	ID         string            `json:"task_id"`
	Cards      []tarot.Selection `json:"cards"`
	Question   string            `json:"question,omitempty"`
	Language   tarot.Language    `json:"language"`
	SpreadType tarot.SpreadType  `json:"spread_type"`
	UserID     string            `json:"user_id,omitempty"`
	SessionID  string            `json:"session_id,omitempty"`
	Status     TaskStatus        `json:"status"`
	ReadingID  string            `json:"reading_id,omitempty"`
	Error      string            `json:"error,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// NewReadingTask 由解读请求和归属生成待处理任务
func NewReadingTask(req services.SpreadRequest, owner services.Owner) *ReadingTask {
	now := time.Now()
	return &ReadingTask{
		ID:         uuid.NewString(),
		Cards:      req.Cards,
		Question:   req.Question,
		Language:   req.Language,
		SpreadType: req.SpreadType,
		UserID:     owner.UserID,
		SessionID:  owner.SessionID,
		Status:     TaskPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Request 还原为解读请求
func (t *ReadingTask) Request() services.SpreadRequest {
	return services.SpreadRequest{
		Cards:      t.Cards,
		Question:   t.Question,
		Language:   t.Language,
		SpreadType: t.SpreadType,
	}
}

// Owner 还原归属
func (t *ReadingTask) Owner() services.Owner {
	return services.Owner{UserID: t.UserID, SessionID: t.SessionID}
}

// Done 是否已结束
func (t *ReadingTask) Done() bool {
	return t.Status == TaskCompleted || t.Status == TaskFailed
}
