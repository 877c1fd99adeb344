// Package users 账户资料与统计
package users

import (
	v1 "arcana/app/http/controllers/api/v1"
	"arcana/app/http/middlewares"
	"arcana/app/requests"
	"arcana/app/services"
	"arcana/pkg/response"

	"github.com/gin-gonic/gin"
)

// UsersController 账户资料
type UsersController struct {
	v1.BaseAPIController
	users *services.UserService
}

func NewUsersController(users *services.UserService) *UsersController {
	return &UsersController{users: users}
}

// UpdateProfile 修改用户名、首选语言
func (uc *UsersController) UpdateProfile(c *gin.Context) {
	request := requests.ProfileRequest{}
	if ok := requests.Validate(c, &request, requests.ValidateProfile); !ok {
		return
	}

	u, err := uc.users.UpdateProfile(c.Request.Context(), middlewares.CurrentUserID(c), services.ProfileInput{
		Username:          request.Username,
		PreferredLanguage: request.PreferredLanguage,
	})
	if err != nil {
		uc.Error(c, err)
		return
	}
	response.Data(c, gin.H{"user": u})
}

// UpdatePassword 修改密码
func (uc *UsersController) UpdatePassword(c *gin.Context) {
	request := requests.PasswordRequest{}
	if ok := requests.Validate(c, &request, requests.ValidatePassword); !ok {
		return
	}

	err := uc.users.ChangePassword(c.Request.Context(), middlewares.CurrentUserID(c), request.CurrentPassword, request.NewPassword)
	if err != nil {
		uc.Error(c, err)
		return
	}
	response.Message(c, "password updated")
}

// Statistics 解读总数等统计
func (uc *UsersController) Statistics(c *gin.Context) {
	stats, err := uc.users.Statistics(c.Request.Context(), middlewares.CurrentUserID(c))
	if err != nil {
		uc.Error(c, err)
		return
	}
	response.Data(c, stats)
}
