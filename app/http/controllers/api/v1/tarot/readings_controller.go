package tarot

import (
	v1 "arcana/app/http/controllers/api/v1"
	"arcana/app/http/middlewares"
	"arcana/app/requests"
	"arcana/app/services"
	"arcana/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// ReadingsController 解读与历史记录
type ReadingsController struct {
	v1.BaseAPIController
	readings *services.ReadingService
}

func NewReadingsController(readings *services.ReadingService) *ReadingsController {
	return &ReadingsController{readings: readings}
}

// Interpret 只生成解读，不保存
func (rc *ReadingsController) Interpret(c *gin.Context) {
	request := requests.SpreadRequest{}
	if ok := requests.Validate(c, &request, requests.ValidateSpread); !ok {
		return
	}

	result, err := rc.readings.Interpret(c.Request.Context(), request.ToService())
	if err != nil {
		rc.Error(c, err)
		return
	}
	response.Data(c, result)
}

// Store 生成解读并保存，登录用户保存到账户，匿名访客保存到会话
func (rc *ReadingsController) Store(c *gin.Context) {
	request := requests.SpreadRequest{}
	if ok := requests.Validate(c, &request, requests.ValidateSpread); !ok {
		return
	}

	owner := ownerOf(c)
	rd, err := rc.readings.Create(c.Request.Context(), request.ToService(), owner)
	if err != nil {
		rc.Error(c, err)
		return
	}

	if owner.UserID == "" {
		c.Header(middlewares.HeaderSessionID, owner.SessionID)
	}
	response.Created(c, gin.H{"reading": rd})
}

// History 当前用户的历史记录，?page=&limit=
func (rc *ReadingsController) History(c *gin.Context) {
	page := cast.ToInt(c.DefaultQuery("page", "1"))
	limit := cast.ToInt(c.DefaultQuery("limit", cast.ToString(services.DefaultPageLimit)))

	result, err := rc.readings.History(c.Request.Context(), middlewares.CurrentUserID(c), page, limit)
	if err != nil {
		rc.Error(c, err)
		return
	}
	response.Data(c, result)
}

// Show 单条记录，匿名记录凭 id 即可查看
func (rc *ReadingsController) Show(c *gin.Context) {
	rd, err := rc.readings.Get(c.Request.Context(), c.Param("id"), middlewares.CurrentUserID(c))
	if err != nil {
		rc.Error(c, err)
		return
	}
	response.Data(c, gin.H{"reading": rd})
}

// Destroy 删除自己的记录
func (rc *ReadingsController) Destroy(c *gin.Context) {
	if err := rc.readings.Delete(c.Request.Context(), c.Param("id"), middlewares.CurrentUserID(c)); err != nil {
		rc.Error(c, err)
		return
	}
	response.Message(c, "reading deleted")
}

// ownerOf 登录用户优先；匿名访客使用 X-Session-ID，没有则生成新的会话
func ownerOf(c *gin.Context) services.Owner {
	if userID := middlewares.CurrentUserID(c); userID != "" {
		return services.Owner{UserID: userID}
	}
	sessionID := c.GetHeader(middlewares.HeaderSessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return services.Owner{SessionID: sessionID}
}
