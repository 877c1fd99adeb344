// Package v1 处理业务逻辑, v1 版本的控制器
package v1

import (
	"errors"

	"arcana/app/services"
	"arcana/pkg/response"
	"arcana/pkg/tarot"

	"github.com/gin-gonic/gin"
)

// BaseAPIController 基础控制器
type BaseAPIController struct {
}

// Error 把业务错误转换为 HTTP 响应，未识别的错误按 500 处理并记录日志
func (ctrl *BaseAPIController) Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tarot.ErrInvalidArgument), errors.Is(err, services.ErrWrongPassword):
		response.Abort400(c, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		response.Abort401(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		response.Abort403(c, err.Error())
	case errors.Is(err, tarot.ErrNotFound),
		errors.Is(err, services.ErrReadingNotFound),
		errors.Is(err, services.ErrUserNotFound):
		response.Abort404(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		response.Abort409(c, err.Error())
	default:
		response.ServerError(c, err)
	}
}
