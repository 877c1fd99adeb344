package ai

import (
	"context"
	"fmt"
	"time"

	"arcana/pkg/config"
	"arcana/pkg/logger"
)

// NewProviderFromConfig 按 ai.provider 创建唯一的提供方
// 缺少凭证时仍返回实例，调用时按失败处理
func NewProviderFromConfig(ctx context.Context) (Provider, error) {
	timeout := time.Duration(config.GetInt("ai.timeout", 30)) * time.Second

	switch name := config.GetString("ai.provider"); name {
	case ProviderOpenAI:
		return NewOpenAIProvider(OpenAIConfig{
			APIKey:  config.GetString("ai.openai_api_key"),
			Model:   config.GetString("ai.openai_model"),
			BaseURL: config.GetString("ai.openai_base_url"),
			Timeout: timeout,
		}), nil
	case ProviderGemini, "":
		return NewGeminiProvider(ctx, config.GetString("ai.gemini_api_key"), config.GetString("ai.gemini_model"))
	default:
		return nil, fmt.Errorf("unknown ai provider %q", name)
	}
}

// ConfigFromEnv 从 ai.* 配置读取重试策略
func ConfigFromEnv() Config {
	return Config{
		MaxAttempts: config.GetInt("ai.max_attempts", 3),
		Timeout:     time.Duration(config.GetInt("ai.timeout", 30)) * time.Second,
		RetryDelay:  time.Duration(config.GetInt("ai.retry_delay_ms", 1000)) * time.Millisecond,
	}
}

// NewInterpreterFromConfig 组装 Provider 与 Interpreter，Provider 创建失败时退化为纯兜底模式
func NewInterpreterFromConfig(ctx context.Context) *Interpreter {
	provider, err := NewProviderFromConfig(ctx)
	if err != nil {
		logger.ErrorString("AI", "Setup", err.Error())
		provider = nil
	} else if !provider.Configured() {
		logger.WarnString("AI", "Setup", fmt.Sprintf("提供方 %s 未配置 API Key，所有解读将使用兜底文本", provider.Name()))
	}
	return NewInterpreter(provider, ConfigFromEnv())
}
