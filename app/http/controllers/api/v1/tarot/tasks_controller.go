package tarot

import (
	"net/http"

	v1 "arcana/app/http/controllers/api/v1"
	"arcana/app/http/middlewares"
	"arcana/app/requests"
	"arcana/pkg/queue"
	"arcana/pkg/response"

	"github.com/gin-gonic/gin"
)

// TasksController 异步解读任务，队列未启用时 queue 为 nil
type TasksController struct {
	v1.BaseAPIController
	queue queue.Queue
}

func NewTasksController(q queue.Queue) *TasksController {
	return &TasksController{queue: q}
}

// Store 校验请求后推入队列，立即返回任务 ID
func (tc *TasksController) Store(c *gin.Context) {
	if tc.queue == nil {
		response.Abort503(c, "async readings are disabled")
		return
	}

	request := requests.SpreadRequest{}
	if ok := requests.Validate(c, &request, requests.ValidateSpread); !ok {
		return
	}

	req := request.ToService()
	req.Normalize()
	if err := req.Validate(); err != nil {
		tc.Error(c, err)
		return
	}

	owner := ownerOf(c)
	task := queue.NewReadingTask(req, owner)
	if err := tc.queue.Push(c.Request.Context(), task); err != nil {
		response.ServerError(c, err, "failed to enqueue reading")
		return
	}

	if owner.UserID == "" {
		c.Header(middlewares.HeaderSessionID, owner.SessionID)
	}
	c.JSON(http.StatusAccepted, response.Response{
		Status: response.Success,
		Data: gin.H{
			"task_id": task.ID,
			"status":  task.Status,
		},
	})
}

// Show 任务状态，完成后带上 reading_id
// 与匿名解读相同，持有 task_id 即可查询；读取解读本身仍需通过 readings 的归属校验
func (tc *TasksController) Show(c *gin.Context) {
	if tc.queue == nil {
		response.Abort503(c, "async readings are disabled")
		return
	}

	task, err := tc.queue.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if task == nil {
		response.Abort404(c, "task not found")
		return
	}

	data := gin.H{
		"task_id": task.ID,
		"status":  task.Status,
	}
	if task.ReadingID != "" {
		data["reading_id"] = task.ReadingID
	}
	if task.Error != "" {
		data["error"] = task.Error
	}
	response.Data(c, data)
}
