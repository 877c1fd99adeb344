package middlewares

import (
	"errors"

	"arcana/pkg/jwt"
	"arcana/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserID 认证通过后写入 gin.Context 的用户 ID 键
	ContextUserID = "user_id"
	// HeaderSessionID 匿名访客的会话标识
	HeaderSessionID = "X-Session-ID"
)

// AuthJWT 必须携带有效的 Bearer Token，否则响应 401
func AuthJWT(j *jwt.JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := j.ParseHeader(c.GetHeader("Authorization"))
		if err != nil {
			if errors.Is(err, jwt.ErrHeaderEmpty) {
				response.Abort401(c, "access token required")
				return
			}
			response.Abort401(c, err.Error())
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth 有 Token 时解析用户，Token 缺失或无效都按匿名请求继续
func OptionalAuth(j *jwt.JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := j.ParseHeader(c.GetHeader("Authorization")); err == nil {
			c.Set(ContextUserID, claims.UserID)
		}
		c.Next()
	}
}

// CurrentUserID 当前登录用户，匿名请求返回空字符串
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
