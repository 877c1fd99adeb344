package config

import "arcana/pkg/config"

func init() {
	config.Add("queue", func() map[string]interface{} {
		return map[string]interface{}{
			// 未开启时不连接 Redis，异步接口返回 503
			"enabled":      config.Env("QUEUE_ENABLED", false),
			"worker_count": config.Env("QUEUE_WORKER_COUNT", 4),
			// 单个任务的处理上限（包含 AI 重试与降级），单位：秒
			"task_timeout": config.Env("QUEUE_TASK_TIMEOUT", 120),
		}
	})
}
