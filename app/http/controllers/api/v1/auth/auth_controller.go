// Package auth 处理用户注册、登录
package auth

import (
	v1 "arcana/app/http/controllers/api/v1"
	"arcana/app/http/middlewares"
	"arcana/app/requests"
	"arcana/app/services"
	"arcana/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthController 用户认证
type AuthController struct {
	v1.BaseAPIController
	users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

// Register 注册并登录，X-Session-ID 下的匿名记录转到新账户
func (ac *AuthController) Register(c *gin.Context) {
	request := requests.RegisterRequest{}
	if ok := requests.Validate(c, &request, requests.ValidateRegister); !ok {
		return
	}

	result, err := ac.users.Register(c.Request.Context(), services.RegisterInput{
		Email:             request.Email,
		Username:          request.Username,
		Password:          request.Password,
		PreferredLanguage: request.PreferredLanguage,
		SessionID:         c.GetHeader(middlewares.HeaderSessionID),
	})
	if err != nil {
		ac.Error(c, err)
		return
	}
	response.Created(c, result, "user registered")
}

// Login 邮箱密码登录
func (ac *AuthController) Login(c *gin.Context) {
	request := requests.LoginRequest{}
	if ok := requests.Validate(c, &request, requests.ValidateLogin); !ok {
		return
	}

	result, err := ac.users.Login(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		ac.Error(c, err)
		return
	}
	response.Data(c, result)
}

// Me 当前登录用户
func (ac *AuthController) Me(c *gin.Context) {
	u, err := ac.users.Profile(c.Request.Context(), middlewares.CurrentUserID(c))
	if err != nil {
		ac.Error(c, err)
		return
	}
	response.Data(c, gin.H{"user": u})
}
