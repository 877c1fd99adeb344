package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// OpenAIConfig OpenAI chat completions 接口配置
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// OpenAIProvider 通过 resty 调用 OpenAI 兼容的 chat completions 接口
type OpenAIProvider struct {
	client *resty.Client
	apiKey string
	model  string
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewOpenAIProvider 创建 OpenAI 提供方，APIKey 为空时 Generate 直接失败
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}

	// 重试由 Interpreter 统一负责，这里不开启 resty 自带的重试
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &OpenAIProvider{
		client: client,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

func (p *OpenAIProvider) Name() string { return ProviderOpenAI }

func (p *OpenAIProvider) Configured() bool { return p.apiKey != "" }

// Generate 以单条 user 消息调用 /chat/completions
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if !p.Configured() {
		return "", fmt.Errorf("%w: %s", ErrProviderNotConfigured, p.Name())
	}

	var result chatResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(p.apiKey).
		SetBody(chatRequest{
			Model:       p.model,
			Messages:    []chatMessage{{Role: "user", Content: prompt}},
			Temperature: 0.8,
			MaxTokens:   1000,
		}).
		SetResult(&result).
		SetError(&result).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		msg := resp.String()
		if result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode(), msg)
	}

	if len(result.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(result.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
