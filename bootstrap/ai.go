package bootstrap

import (
	"context"

	"arcana/pkg/ai"
	"arcana/pkg/logger"
)

// SetupAI 按配置创建唯一的解读服务提供方，凭证缺失时只使用兜底解读
func SetupAI(ctx context.Context) *ai.Interpreter {
	interpreter := ai.NewInterpreterFromConfig(ctx)
	logger.InfoString("AI", "Setup", "解读服务提供方："+interpreter.ProviderName())
	return interpreter
}
