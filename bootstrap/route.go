package bootstrap

import (
	"net/http"
	"strings"

	"arcana/app/http/middlewares"
	"arcana/pkg/response"
	"arcana/routes"

	"github.com/gin-gonic/gin"
)

// SetupRoute 路由初始化：全局中间件、API 路由、404 处理
func SetupRoute(router *gin.Engine, deps routes.Dependencies) {
	registerGlobalMiddleWare(router)
	routes.RegisterAPIRoutes(router, deps)
	setup404Handler(router)
}

// registerGlobalMiddleWare 注册全局中间件
func registerGlobalMiddleWare(router *gin.Engine) {
	router.Use(
		middlewares.Logger(),   // 记录请求日志
		middlewares.Recovery(), // 在发生 panic 时恢复
		middlewares.Cors(),     // 预检请求不会命中路由，需要全局处理
	)
}

// setup404Handler 根据 Accept 头返回文本或 JSON 格式的 404
func setup404Handler(router *gin.Engine) {
	router.NoRoute(func(c *gin.Context) {
		acceptString := c.Request.Header.Get("Accept")
		if strings.Contains(acceptString, "text/html") {
			c.String(http.StatusNotFound, "页面返回 404")
			return
		}
		response.Abort404(c, "route not found")
	})
}
