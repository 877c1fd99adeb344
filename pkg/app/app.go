// Package app 提供应用程序相关的辅助函数
package app

import (
	"time"

	"arcana/pkg/config"
)

// Env 当前运行环境，来自 app.env 配置
func Env() string {
	return config.Get("app.env")
}

// IsLocal 判断当前是否运行在本地环境
func IsLocal() bool {
	return Env() == "local"
}

// IsProduction 判断当前是否运行在生产环境
func IsProduction() bool {
	return Env() == "production"
}

// IsTesting 判断当前是否运行在测试环境
func IsTesting() bool {
	return Env() == "testing"
}

// TimenowInTimezone 获取配置时区（app.timezone）的当前时间
// 时区无法加载时退回 UTC
func TimenowInTimezone() time.Time {
	loc, err := time.LoadLocation(config.GetString("app.timezone", "Europe/Kyiv"))
	if err != nil {
		return time.Now().UTC()
	}
	return time.Now().In(loc)
}
