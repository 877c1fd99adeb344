// Package bootstrap 处理程序初始化逻辑
package bootstrap

import (
	"context"

	v1 "arcana/app/http/controllers/api/v1"
	"arcana/app/repositories"
	"arcana/app/services"
	"arcana/pkg/database"
	"arcana/pkg/jwt"
	"arcana/pkg/queue"
	"arcana/pkg/tarot"
	"arcana/routes"
)

// App 组装好的应用依赖
type App struct {
	Routes routes.Dependencies
	Worker *queue.Worker
}

// Close 停止后台工作器
func (a *App) Close() {
	if a.Worker != nil {
		a.Worker.Stop()
	}
}

// SetupApp 在数据库连接之后调用，组装牌库、解读服务、仓库与队列
func SetupApp(ctx context.Context) (*App, error) {
	catalog, err := tarot.LoadCatalog()
	if err != nil {
		return nil, err
	}

	interpreter := SetupAI(ctx)
	readingRepo := repositories.NewReadingRepository(database.DB)
	userRepo := repositories.NewUserRepository(database.DB)
	tokens := jwt.NewJWT()

	readings := services.NewReadingService(tarot.NewDrawer(catalog, nil), interpreter, readingRepo)
	users := services.NewUserService(userRepo, readingRepo, tokens)

	app := &App{
		Routes: routes.Dependencies{
			Readings: readings,
			Users:    users,
			JWT:      tokens,
		},
	}

	health := &v1.HealthController{
		Provider:           interpreter.ProviderName(),
		ProviderConfigured: interpreter.Configured(),
		DB:                 dbPinger{},
	}

	q, worker := SetupQueue(readings)
	if q != nil {
		app.Routes.Queue = q
		app.Worker = worker
		health.Queue = q
	}
	app.Routes.Health = health

	return app, nil
}

type dbPinger struct{}

func (dbPinger) Ping(ctx context.Context) error {
	return database.SQLDB.PingContext(ctx)
}
