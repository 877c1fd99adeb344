package v1

import (
	"context"
	"net/http"
	"time"

	"arcana/pkg/response"

	"github.com/gin-gonic/gin"
)

// Pinger 健康检查依赖
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController 健康检查
type HealthController struct {
	BaseAPIController

	// Provider 当前解读服务提供方
	Provider string
	// ProviderConfigured 提供方是否配置了凭证，未配置时所有解读使用兜底文本
	ProviderConfigured bool
	// DB 与 Queue 为 nil 时不检查
	DB    Pinger
	Queue Pinger
}

// Show 健康检查端点
func (hc *HealthController) Show(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	checks := gin.H{}
	if hc.DB != nil {
		checks["database"] = check(ctx, hc.DB)
	}
	if hc.Queue != nil {
		checks["queue"] = check(ctx, hc.Queue)
	}
	for _, v := range checks {
		if v != "ok" {
			status = "degraded"
		}
	}

	data := gin.H{
		"status": status,
		"time":   time.Now().Unix(),
		"ai": gin.H{
			"provider":   hc.Provider,
			"configured": hc.ProviderConfigured,
		},
		"checks": checks,
	}
	if status != "ok" {
		c.JSON(http.StatusServiceUnavailable, response.Response{Status: response.Error, Data: data})
		return
	}
	response.Data(c, data)
}

func check(ctx context.Context, p Pinger) string {
	if err := p.Ping(ctx); err != nil {
		return err.Error()
	}
	return "ok"
}
