package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arcana/bootstrap"
	"arcana/pkg/config"
	"arcana/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// CmdServe represents the available web sub-command.
var CmdServe = &cobra.Command{
	Use:   "serve",
	Short: "Start web server",
	RunE:  runWeb,
	Args:  cobra.NoArgs,
}

func runWeb(cmd *cobra.Command, args []string) error {
	// 设置 gin 的运行模式，支持 debug, release, test
	// release 会屏蔽调试信息，官方建议生产环境中使用
	// 非 release 模式 gin 终端打印太多信息，干扰到我们程序中的 Log
	gin.SetMode(gin.ReleaseMode)

	if err := bootstrap.SetupDB(); err != nil {
		return err
	}
	if err := bootstrap.MigrateDB(); err != nil {
		return err
	}

	ctx := context.Background()
	app, err := bootstrap.SetupApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	router := gin.New()
	bootstrap.SetupRoute(router, app.Routes)

	server := &http.Server{
		Addr:              ":" + config.Get("app.port"),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoString("Server", "Start", "服务器正在启动，监听端口 "+server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.ErrorString("Server", "Start", err.Error())
		return err
	case <-quit:
	}

	logger.InfoString("Server", "Shutdown", "正在关闭服务器...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.InfoString("Server", "Shutdown", "服务器已成功关闭")
	return nil
}
