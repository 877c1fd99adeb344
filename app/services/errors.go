// Package services 业务逻辑层，仓库错误在这里映射为领域错误，由控制器转换为 HTTP 状态码
package services

import "errors"

var (
	// ErrReadingNotFound 解读记录不存在
	ErrReadingNotFound = errors.New("reading not found")
	// ErrForbidden 记录属于其他用户
	ErrForbidden = errors.New("access denied")
	// ErrUnauthorized 凭证缺失或错误
	ErrUnauthorized = errors.New("invalid email or password")
	// ErrEmailTaken 邮箱已注册
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword 修改密码时当前密码错误
	ErrWrongPassword = errors.New("current password is incorrect")
)
