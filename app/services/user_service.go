package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arcana/app/models/user"
	"arcana/pkg/logger"
	"arcana/pkg/tarot"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserStore 用户存储
type UserStore interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	IsEmailExist(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, u *user.User) error
}

// TokenIssuer 签发访问令牌
type TokenIssuer interface {
	IssueToken(userID string) (string, error)
}

// RegisterInput 注册参数
type RegisterInput struct {
	Email             string
	Username          string
	Password          string
	PreferredLanguage string
	// SessionID 注册前的匿名会话，其下的记录会转到新用户
	SessionID string
}

// ProfileInput 可修改的资料，nil 表示不修改
type ProfileInput struct {
	Username          *string
	PreferredLanguage *string
}

// AuthResult 注册或登录成功后返回
type AuthResult struct {
	User  *user.User `json:"user"`
	Token string     `json:"token"`
}

// Statistics 用户统计
type Statistics struct {
	TotalReadings     int64     `json:"total_readings"`
	MemberSince       time.Time `json:"member_since"`
	PreferredLanguage string    `json:"preferred_language"`
}

// UserService 账户管理
type UserService struct {
	users    UserStore
	readings ReadingStore
	tokens   TokenIssuer
}

func NewUserService(users UserStore, readings ReadingStore, tokens TokenIssuer) *UserService {
	return &UserService{users: users, readings: readings, tokens: tokens}
}

// Register 创建用户并签发令牌
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	exists, err := s.users.IsEmailExist(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	u := &user.User{
		Email:             in.Email,
		Username:          in.Username,
		Password:          in.Password,
		PreferredLanguage: string(tarot.ParseLanguage(in.PreferredLanguage)),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if in.SessionID != "" {
		claimed, err := s.readings.ClaimSession(ctx, in.SessionID, u.ID)
		if err != nil {
			// 迁移失败不影响注册
			logger.Warn("User", zap.String("action", "claim_session"), zap.String("user_id", u.ID), zap.Error(err))
		} else if claimed > 0 {
			logger.Info("User", zap.String("action", "claim_session"), zap.String("user_id", u.ID), zap.Int64("readings", claimed))
		}
	}

	return s.authResult(u)
}

// Login 校验邮箱和密码
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !u.ComparePassword(password) {
		return nil, ErrUnauthorized
	}
	return s.authResult(u)
}

// Profile 当前用户
func (s *UserService) Profile(ctx context.Context, userID string) (*user.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

// UpdateProfile 只允许修改用户名和首选语言
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*user.User, error) {
	u, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.PreferredLanguage != nil {
		u.PreferredLanguage = *in.PreferredLanguage
	}

	if err := s.users.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// ChangePassword 校验当前密码后设置新密码
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	u, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	if !u.ComparePassword(current) {
		return ErrWrongPassword
	}

	// 明文赋值，保存时由模型钩子加密
	u.Password = next
	if err := s.users.Save(ctx, u); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// Statistics 解读总数、注册时间与首选语言
func (s *UserService) Statistics(ctx context.Context, userID string) (*Statistics, error) {
	u, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	total, err := s.readings.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count readings: %w", err)
	}
	return &Statistics{
		TotalReadings:     total,
		MemberSince:       u.CreatedAt,
		PreferredLanguage: u.PreferredLanguage,
	}, nil
}

func (s *UserService) authResult(u *user.User) (*AuthResult, error) {
	token, err := s.tokens.IssueToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{User: u, Token: token}, nil
}
