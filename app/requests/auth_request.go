package requests

import (
	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// RegisterRequest 注册
type RegisterRequest struct {
	Email             string `json:"email" valid:"email"`
	Username          string `json:"username" valid:"username"`
	Password          string `json:"password" valid:"password"`
	PreferredLanguage string `json:"preferred_language" valid:"preferred_language"`
}

func ValidateRegister(data interface{}, c *gin.Context) map[string][]string {
	rules := govalidator.MapData{
		"email":              []string{"required", "email", "max:255"},
		"username":           []string{"required", "between:2,50"},
		"password":           []string{"required", "between:8,50"},
		"preferred_language": []string{"in:uk,en"},
	}
	messages := govalidator.MapData{
		"email": []string{
			"required:email is required",
			"email:email must be a valid address",
			"max:email must not exceed 255 characters",
		},
		"username": []string{
			"required:username is required",
			"between:username must be between 2 and 50 characters",
		},
		"password": []string{
			"required:password is required",
			"between:password must be between 8 and 50 characters",
		},
		"preferred_language": []string{
			"in:preferred_language must be one of uk, en",
		},
	}
	return validate(data, rules, messages)
}

// LoginRequest 登录
type LoginRequest struct {
	Email    string `json:"email" valid:"email"`
	Password string `json:"password" valid:"password"`
}

func ValidateLogin(data interface{}, c *gin.Context) map[string][]string {
	rules := govalidator.MapData{
		"email":    []string{"required", "email"},
		"password": []string{"required"},
	}
	messages := govalidator.MapData{
		"email": []string{
			"required:email is required",
			"email:email must be a valid address",
		},
		"password": []string{
			"required:password is required",
		},
	}
	return validate(data, rules, messages)
}
