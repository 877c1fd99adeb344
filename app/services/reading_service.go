package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"arcana/app/models/reading"
	"arcana/pkg/helpers"
	"arcana/pkg/logger"
	"arcana/pkg/tarot"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

// ReadingStore 解读记录存储
type ReadingStore interface {
	Create(ctx context.Context, rd *reading.Reading) error
	FindByID(ctx context.Context, id string) (*reading.Reading, error)
	ListByOwner(ctx context.Context, userID string, page, limit int) ([]reading.Reading, int64, error)
	DeleteByID(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int64, error)
	ClaimSession(ctx context.Context, sessionID, userID string) (int64, error)
}

// Interpreter 解读文本生成
type Interpreter interface {
	Interpret(ctx context.Context, cards []tarot.DrawnCard, question string, language tarot.Language, spread tarot.SpreadType) (string, error)
}

// SpreadRequest 解读请求：3 张选中的牌、问题、语言和牌阵类型
type SpreadRequest struct {
	Cards      []tarot.Selection `json:"cards"`
	Question   string            `json:"question,omitempty"`
	Language   tarot.Language    `json:"language"`
	SpreadType tarot.SpreadType  `json:"spread_type"`
}

// Normalize 填充默认的语言与牌阵类型
func (r *SpreadRequest) Normalize() {
	r.Language = tarot.ParseLanguage(string(r.Language))
	r.SpreadType = tarot.ParseSpreadType(string(r.SpreadType))
}

// Validate 校验牌阵、语言与问题
func (r SpreadRequest) Validate() error {
	switch r.SpreadType {
	case tarot.SpreadTemporal, tarot.SpreadQuestion:
	default:
		return fmt.Errorf("%w: unknown spread type %q", tarot.ErrInvalidArgument, r.SpreadType)
	}
	switch r.Language {
	case tarot.LanguageUk, tarot.LanguageEn:
	default:
		return fmt.Errorf("%w: unsupported language %q", tarot.ErrInvalidArgument, r.Language)
	}
	if r.SpreadType == tarot.SpreadQuestion && strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("%w: question is required for question spreads", tarot.ErrInvalidArgument)
	}
	if len(r.Cards) != tarot.SelectionSize {
		return fmt.Errorf("%w: exactly %d cards are required", tarot.ErrInvalidArgument, tarot.SelectionSize)
	}
	return nil
}

// Owner 记录归属：登录用户或匿名会话
type Owner struct {
	UserID    string
	SessionID string
}

// Interpretation 解读结果
type Interpretation struct {
	Interpretation string            `json:"interpretation"`
	Cards          []tarot.DrawnCard `json:"cards"`
}

// HistoryPage 分页的历史记录
type HistoryPage struct {
	Readings   []reading.Reading `json:"readings"`
	Pagination Pagination        `json:"pagination"`
}

// Pagination 分页信息
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ReadingService 抽牌、解读与记录管理
type ReadingService struct {
	drawer      *tarot.Drawer
	interpreter Interpreter
	store       ReadingStore
}

func NewReadingService(drawer *tarot.Drawer, interpreter Interpreter, store ReadingStore) *ReadingService {
	return &ReadingService{drawer: drawer, interpreter: interpreter, store: store}
}

// Catalog 只读牌库
func (s *ReadingService) Catalog() *tarot.Catalog {
	return s.drawer.Catalog()
}

// Draw 随机抽取 3 张牌
func (s *ReadingService) Draw(spread tarot.SpreadType) ([]tarot.DrawnCard, error) {
	return s.drawer.Draw(tarot.SelectionSize, tarot.ParseSpreadType(string(spread)))
}

// Interpret 还原选中的牌并生成解读，不做持久化
func (s *ReadingService) Interpret(ctx context.Context, req SpreadRequest) (*Interpretation, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.drawer.ResolveSelection(req.Cards, req.SpreadType)
	if err != nil {
		return nil, err
	}

	text, err := s.interpreter.Interpret(ctx, cards, req.Question, req.Language, req.SpreadType)
	if err != nil {
		return nil, err
	}
	return &Interpretation{Interpretation: text, Cards: cards}, nil
}

// Create 生成解读并保存，归属于登录用户或匿名会话
func (s *ReadingService) Create(ctx context.Context, req SpreadRequest, owner Owner) (*reading.Reading, error) {
	if owner.UserID == "" && owner.SessionID == "" {
		return nil, fmt.Errorf("%w: reading owner is required", tarot.ErrInvalidArgument)
	}

	result, err := s.Interpret(ctx, req)
	if err != nil {
		return nil, err
	}
	req.Normalize()

	rd := &reading.Reading{
		Cards:          result.Cards,
		Question:       helpers.StringPtr(req.Question),
		SpreadType:     string(req.SpreadType),
		Language:       string(req.Language),
		Interpretation: result.Interpretation,
	}
	if owner.UserID != "" {
		rd.UserID = helpers.StringPtr(owner.UserID)
	} else {
		rd.SessionID = helpers.StringPtr(owner.SessionID)
	}

	if err := s.store.Create(ctx, rd); err != nil {
		logger.Error("Reading", zap.String("action", "create"), zap.Error(err))
		return nil, fmt.Errorf("create reading: %w", err)
	}
	return rd, nil
}

// Get 获取记录；属于其他用户的记录返回 ErrForbidden，匿名记录凭 id 即可访问
func (s *ReadingService) Get(ctx context.Context, id, requesterID string) (*reading.Reading, error) {
	rd, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rd.IsPublic() && !rd.OwnedBy(requesterID) {
		return nil, ErrForbidden
	}
	return rd, nil
}

// History 用户的历史记录
func (s *ReadingService) History(ctx context.Context, userID string, page, limit int) (*HistoryPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	readings, total, err := s.store.ListByOwner(ctx, userID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}

	return &HistoryPage{
		Readings: readings,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

// Delete 只有记录的所有者可以删除
func (s *ReadingService) Delete(ctx context.Context, id, userID string) error {
	rd, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !rd.OwnedBy(userID) {
		return ErrForbidden
	}
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}
	return nil
}

// ClaimSession 注册后把匿名会话的记录转给用户
func (s *ReadingService) ClaimSession(ctx context.Context, sessionID, userID string) (int64, error) {
	n, err := s.store.ClaimSession(ctx, sessionID, userID)
	if err != nil {
		return 0, fmt.Errorf("claim session readings: %w", err)
	}
	return n, nil
}

func (s *ReadingService) find(ctx context.Context, id string) (*reading.Reading, error) {
	rd, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReadingNotFound
		}
		return nil, fmt.Errorf("find reading: %w", err)
	}
	return rd, nil
}
