// Package requests 处理请求数据和表单验证
package requests

import (
	"arcana/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// ValidatorFunc 验证函数类型
type ValidatorFunc func(interface{}, *gin.Context) map[string][]string

// Validate 控制器里调用示例：
//
//	request := requests.SpreadRequest{}
//	if ok := requests.Validate(c, &request, requests.ValidateSpread); !ok {
//	    return
//	}
//
// 解析失败响应 400，验证失败响应 422
func Validate(c *gin.Context, obj interface{}, handler ValidatorFunc) bool {
	// 1. 解析请求体
	if err := c.ShouldBindJSON(obj); err != nil {
		response.BadRequest(c, err, "malformed request body")
		return false
	}

	// 2. 表单验证
	if errs := handler(obj, c); len(errs) > 0 {
		response.ValidationError(c, errs)
		return false
	}

	return true
}

// validate 通用的结构体验证，data 必须是结构体指针
func validate(data interface{}, rules govalidator.MapData, messages govalidator.MapData) map[string][]string {
	opts := govalidator.Options{
		Data:          data,
		Rules:         rules,
		TagIdentifier: "valid", // 模型中的 Struct 标签标识符
		Messages:      messages,
	}

	return govalidator.New(opts).ValidateStruct()
}

// addError 追加一条验证错误
func addError(errs map[string][]string, field, msg string) map[string][]string {
	if errs == nil {
		errs = map[string][]string{}
	}
	errs[field] = append(errs[field], msg)
	return errs
}
