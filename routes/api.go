// Package routes 注册路由
package routes

import (
	v1 "arcana/app/http/controllers/api/v1"
	"arcana/app/http/controllers/api/v1/auth"
	"arcana/app/http/controllers/api/v1/tarot"
	"arcana/app/http/controllers/api/v1/users"
	"arcana/app/http/middlewares"
	"arcana/app/services"
	"arcana/pkg/jwt"
	"arcana/pkg/queue"

	"github.com/gin-gonic/gin"
)

// Dependencies 控制器依赖，由 bootstrap 组装后注入
type Dependencies struct {
	Readings *services.ReadingService
	Users    *services.UserService
	JWT      *jwt.JWT
	// Queue 未启用异步队列时为 nil，任务接口响应 503
	Queue  queue.Queue
	Health *v1.HealthController
}

// RegisterAPIRoutes 注册所有 API 路由
func RegisterAPIRoutes(r *gin.Engine, deps Dependencies) {
	health := deps.Health
	if health == nil {
		health = &v1.HealthController{}
	}
	r.GET("/health", health.Show)

	v1Group := r.Group("/v1")
	v1Group.Use(middlewares.SecurityHeaders())

	authRequired := middlewares.AuthJWT(deps.JWT)
	authOptional := middlewares.OptionalAuth(deps.JWT)

	// 🎴 牌库
	cardsGroup := v1Group.Group("/cards")
	{
		cc := tarot.NewCardsController(deps.Readings)
		cardsGroup.GET("", cc.Index)
		cardsGroup.GET("/random", cc.Random)
		cardsGroup.GET("/:id", cc.Show)
	}

	// 🔮 解读
	readingsGroup := v1Group.Group("/readings")
	{
		rc := tarot.NewReadingsController(deps.Readings)
		readingsGroup.POST("/interpret", authOptional, rc.Interpret)
		readingsGroup.POST("", authOptional, rc.Store)
		readingsGroup.GET("/history", authRequired, rc.History)
		readingsGroup.GET("/:id", authOptional, rc.Show)
		readingsGroup.DELETE("/:id", authRequired, rc.Destroy)

		// 异步任务：POST 入队，GET 查询状态
		tc := tarot.NewTasksController(deps.Queue)
		readingsGroup.POST("/tasks", authOptional, tc.Store)
		readingsGroup.GET("/tasks/:id", tc.Show)
	}

	// 🔑 认证
	authGroup := v1Group.Group("/auth")
	{
		ac := auth.NewAuthController(deps.Users)
		authGroup.POST("/register", ac.Register)
		authGroup.POST("/login", ac.Login)
		authGroup.GET("/me", authRequired, ac.Me)
	}

	// 👤 账户
	usersGroup := v1Group.Group("/users", authRequired)
	{
		uc := users.NewUsersController(deps.Users)
		usersGroup.PATCH("/profile", uc.UpdateProfile)
		usersGroup.PATCH("/password", uc.UpdatePassword)
		usersGroup.GET("/statistics", uc.Statistics)
	}
}
