package config

import (
	"arcana/pkg/config"
)

func init() {
	config.Add("ai", func() map[string]interface{} {
		return map[string]interface{}{
			// 解读服务提供方：gemini 或 openai，进程级配置
			"provider": config.Env("AI_PROVIDER", "gemini"),

			"openai_api_key":  config.Env("OPENAI_API_KEY", ""),
			"openai_model":    config.Env("OPENAI_MODEL", "gpt-4o-mini"),
			"openai_base_url": config.Env("OPENAI_BASE_URL", "https://api.openai.com/v1"),

			"gemini_api_key": config.Env("GEMINI_API_KEY", ""),
			"gemini_model":   config.Env("GEMINI_MODEL", "gemini-2.5-flash"),

			// 单次请求超时，单位：秒
			"timeout": config.Env("AI_TIMEOUT", 30),
			// 总尝试次数（包含第一次）
			"max_attempts": config.Env("AI_MAX_ATTEMPTS", 3),
			// 线性退避基数，第 N 次失败后等待 N 倍，单位：毫秒
			"retry_delay_ms": config.Env("AI_RETRY_DELAY_MS", 1000),
		}
	})
}
