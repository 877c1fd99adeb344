// Package response 提供统一的 HTTP 响应处理
package response

import (
	"net/http"

	"arcana/pkg/logger"

	"github.com/gin-gonic/gin"
)

// 预定义响应状态
const (
	Success = "success" // 成功状态
	Error   = "error"   // 错误状态
)

/* 标准响应结构
{
    "status": "success",
    "data": {},     // 成功时返回的数据
    "error": "",    // 错误时返回的信息
    "message": "",  // 提示信息
}
*/

// Response 统一响应结构体
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ------------------ 🎯 成功响应系列 ------------------

// Data 响应 200 和数据
func Data(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status: Success,
		Data:   data,
	})
}

// Created 响应 201 和新建的数据
func Created(c *gin.Context, data interface{}, msg ...string) {
	c.JSON(http.StatusCreated, Response{
		Status:  Success,
		Data:    data,
		Message: getMsg("created", msg...),
	})
}

// Message 响应 200，只带提示信息
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Response{
		Status:  Success,
		Message: msg,
	})
}

//  ------------------ 错误响应系列 ------------------

// Abort400 响应 400 错误
func Abort400(c *gin.Context, msg ...string) {
	abort(c, http.StatusBadRequest, getMsg("invalid request", msg...))
}

// Abort401 响应 401 错误，未登录或令牌无效
func Abort401(c *gin.Context, msg ...string) {
	abort(c, http.StatusUnauthorized, getMsg("authentication required", msg...))
}

// Abort403 响应 403 错误，无权访问
func Abort403(c *gin.Context, msg ...string) {
	abort(c, http.StatusForbidden, getMsg("access denied", msg...))
}

// Abort404 响应 404 错误
func Abort404(c *gin.Context, msg ...string) {
	abort(c, http.StatusNotFound, getMsg("resource not found", msg...))
}

// Abort409 响应 409 错误，资源冲突
func Abort409(c *gin.Context, msg ...string) {
	abort(c, http.StatusConflict, getMsg("resource already exists", msg...))
}

// Abort500 响应 500 错误
func Abort500(c *gin.Context, msg ...string) {
	abort(c, http.StatusInternalServerError, getMsg("internal server error", msg...))
}

// Abort503 响应 503 错误，依赖的服务不可用
func Abort503(c *gin.Context, msg ...string) {
	abort(c, http.StatusServiceUnavailable, getMsg("service unavailable", msg...))
}

// BadRequest 响应 400 错误（带错误信息）
func BadRequest(c *gin.Context, err error, msg ...string) {
	logger.LogWarnIf(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Status:  Error,
		Message: getMsg("malformed request body", msg...),
		Error:   err.Error(),
	})
}

// ServerError 响应 500 错误，错误详情只写日志
func ServerError(c *gin.Context, err error, msg ...string) {
	logger.LogIf(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
		Status:  Error,
		Message: getMsg("internal server error", msg...),
	})
}

// ValidationError 响应 422 表单验证错误
func ValidationError(c *gin.Context, errors map[string][]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, Response{
		Status:  Error,
		Message: "validation failed",
		Data:    errors,
	})
}

func abort(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, Response{
		Status:  Error,
		Message: msg,
	})
}

// getMsg 获取消息内容
func getMsg(defaultMsg string, msg ...string) string {
	if len(msg) > 0 && msg[0] != "" {
		return msg[0]
	}
	return defaultMsg
}
