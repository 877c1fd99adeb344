// Package jwt 处理 JWT 认证
package jwt

import (
	"errors"
	"strings"
	"time"

	"arcana/pkg/app"
	"arcana/pkg/config"

	jwtpkg "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired    = errors.New("token has expired")
	ErrTokenMalformed  = errors.New("malformed token")
	ErrTokenInvalid    = errors.New("invalid token")
	ErrHeaderEmpty     = errors.New("authorization header is required")
	ErrHeaderMalformed = errors.New("authorization header must be in the form 'Bearer <token>'")
)

// JWT 定义一个 jwt 对象
type JWT struct {
	// 秘钥，用以加密 JWT
	SignKey []byte
	// 过期时间
	ExpireTime time.Duration
	// 签发者
	Issuer string
}

// CustomClaims 自定义载荷
type CustomClaims struct {
	UserID string `json:"user_id"`

	jwtpkg.RegisteredClaims
}

// New 使用给定的密钥与有效期创建 JWT 对象
func New(secret string, expire time.Duration, issuer string) *JWT {
	return &JWT{
		SignKey:    []byte(secret),
		ExpireTime: expire,
		Issuer:     issuer,
	}
}

// NewJWT 按 jwt.* 配置创建
func NewJWT() *JWT {
	return New(
		config.GetString("jwt.secret"),
		time.Duration(config.GetInt64("jwt.expire_time", 24*7))*time.Hour,
		config.GetString("app.name", "Arcana"),
	)
}

// IssueToken 生成 Token，在登录和注册成功后调用
func (j *JWT) IssueToken(userID string) (string, error) {
	now := app.TimenowInTimezone()
	claims := CustomClaims{
		UserID: userID,
		RegisteredClaims: jwtpkg.RegisteredClaims{
			Subject:   userID,
			Issuer:    j.Issuer,
			IssuedAt:  jwtpkg.NewNumericDate(now),
			NotBefore: jwtpkg.NewNumericDate(now),
			ExpiresAt: jwtpkg.NewNumericDate(now.Add(j.ExpireTime)),
		},
	}

	token := jwtpkg.NewWithClaims(jwtpkg.SigningMethodHS256, claims)
	return token.SignedString(j.SignKey)
}

// ParseToken 解析并校验 Token
func (j *JWT) ParseToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwtpkg.ParseWithClaims(tokenString, claims, func(token *jwtpkg.Token) (interface{}, error) {
		return j.SignKey, nil
	}, jwtpkg.WithValidMethods([]string{jwtpkg.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwtpkg.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwtpkg.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// ParseHeader 从 Authorization: Bearer xxxxx 中解析 Token
func (j *JWT) ParseHeader(header string) (*CustomClaims, error) {
	tokenString, err := tokenFromHeader(header)
	if err != nil {
		return nil, err
	}
	return j.ParseToken(tokenString)
}

func tokenFromHeader(header string) (string, error) {
	if header == "" {
		return "", ErrHeaderEmpty
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", ErrHeaderMalformed
	}
	return strings.TrimSpace(parts[1]), nil
}
