package requests

import (
	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// ProfileRequest 修改资料，未传的字段保持不变
type ProfileRequest struct {
	Username          *string `json:"username" valid:"username"`
	PreferredLanguage *string `json:"preferred_language" valid:"preferred_language"`
}

func ValidateProfile(data interface{}, c *gin.Context) map[string][]string {
	req := data.(*ProfileRequest)

	var errs map[string][]string
	if req.Username != nil {
		if n := len([]rune(*req.Username)); n < 2 || n > 50 {
			errs = addError(errs, "username", "username must be between 2 and 50 characters")
		}
	}
	if req.PreferredLanguage != nil {
		if lang := *req.PreferredLanguage; lang != "uk" && lang != "en" {
			errs = addError(errs, "preferred_language", "preferred_language must be one of uk, en")
		}
	}
	return errs
}

// PasswordRequest 修改密码
type PasswordRequest struct {
	CurrentPassword string `json:"current_password" valid:"current_password"`
	NewPassword     string `json:"new_password" valid:"new_password"`
}

func ValidatePassword(data interface{}, c *gin.Context) map[string][]string {
	rules := govalidator.MapData{
		"current_password": []string{"required"},
		"new_password":     []string{"required", "between:8,50"},
	}
	messages := govalidator.MapData{
		"current_password": []string{
			"required:current_password is required",
		},
		"new_password": []string{
			"required:new_password is required",
			"between:new_password must be between 8 and 50 characters",
		},
	}
	return validate(data, rules, messages)
}
