// Package ai 塔罗解读服务：提示词发送给外部大模型，带重试、超时与本地兜底解读
package ai

import (
	"context"
	"errors"
)

var (
	// ErrProviderNotConfigured 未配置凭证或客户端
	ErrProviderNotConfigured = errors.New("ai provider not configured")
	// ErrEmptyResponse 模型返回了空文本
	ErrEmptyResponse = errors.New("ai provider returned empty response")
	// ErrAttemptTimeout 单次请求超时
	ErrAttemptTimeout = errors.New("ai request timeout")
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Provider 单轮文本生成能力，openai 与 gemini 两种实现
type Provider interface {
	Name() string
	// Configured 是否具备调用所需的凭证
	Configured() bool
	Generate(ctx context.Context, prompt string) (string, error)
}
