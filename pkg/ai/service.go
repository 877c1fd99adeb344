package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"arcana/pkg/logger"
	"arcana/pkg/tarot"

	"go.uber.org/zap"
)

// Config 重试策略
type Config struct {
	MaxAttempts int           // 总尝试次数
	Timeout     time.Duration // 单次请求超时
	RetryDelay  time.Duration // 第 N 次失败后等待 N * RetryDelay
}

// DefaultConfig 3 次尝试，每次 30 秒，退避 1s、2s
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		Timeout:     30 * time.Second,
		RetryDelay:  time.Second,
	}
}

// Interpreter 解读服务，进程启动时按配置选定唯一的 Provider
type Interpreter struct {
	provider Provider
	cfg      Config
}

// NewInterpreter provider 可以为 nil，此时每次尝试都按失败处理，最终返回兜底解读
func NewInterpreter(provider Provider, cfg Config) *Interpreter {
	def := DefaultConfig()
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RetryDelay < 0 {
		cfg.RetryDelay = 0
	}
	return &Interpreter{provider: provider, cfg: cfg}
}

// ProviderName 当前使用的提供方名称
func (s *Interpreter) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// Configured 提供方是否具备凭证，供健康检查使用
func (s *Interpreter) Configured() bool {
	return s.provider != nil && s.provider.Configured()
}

// Interpret 生成三张牌的解读文本
// 仅在牌数不是 3 张时返回错误；提供方失败、超时或调用方取消时返回兜底解读
func (s *Interpreter) Interpret(ctx context.Context, cards []tarot.DrawnCard, question string, language tarot.Language, spread tarot.SpreadType) (string, error) {
	if len(cards) != tarot.SelectionSize {
		return "", fmt.Errorf("%w: exactly %d cards are required, got %d", tarot.ErrInvalidArgument, tarot.SelectionSize, len(cards))
	}

	prompt := tarot.BuildPrompt(cards, question, language, spread)
	start := time.Now()

	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		text, err := s.attempt(ctx, prompt)
		if err == nil {
			logger.Info("AI",
				zap.String("provider", s.ProviderName()),
				zap.Int("attempt", attempt),
				zap.Duration("elapsed", time.Since(start)),
				zap.Int("length", len(text)),
			)
			return text, nil
		}

		logger.Warn("AI",
			zap.String("provider", s.ProviderName()),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", s.cfg.MaxAttempts),
			zap.Error(err),
		)

		if attempt == s.cfg.MaxAttempts || ctx.Err() != nil {
			break
		}
		if !sleep(ctx, s.cfg.RetryDelay*time.Duration(attempt)) {
			break
		}
	}

	logger.WarnString("AI", "Fallback", fmt.Sprintf("所有尝试均失败，使用本地兜底解读 语言:%s 牌阵:%s", language, spread))
	return Fallback(cards, language, spread, question), nil
}

// attempt 单次调用，与超时计时器竞争，超时后放弃仍在进行的调用
func (s *Interpreter) attempt(ctx context.Context, prompt string) (string, error) {
	if s.provider == nil {
		return "", ErrProviderNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := s.provider.Generate(ctx, prompt)
		done <- result{text: text, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return "", r.err
		}
		if strings.TrimSpace(r.text) == "" {
			return "", ErrEmptyResponse
		}
		return r.text, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrAttemptTimeout
		}
		return "", ctx.Err()
	}
}

// sleep 等待 d，期间 ctx 取消则返回 false
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
