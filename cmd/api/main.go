package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/pkg/logger"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

// @title           图书馆借阅系统 API
// @version         1.0
// @description     馆藏目录、读者、借书车与结账借阅
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	zl, sync := logger.MustSetup(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	defer sync()

	zl.Info("配置加载成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Bool("mq", cfg.MQ.Enabled),
	)

	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(tracing.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
			Insecure:    cfg.Tracing.Insecure,
		})
		if err != nil {
			zl.Warn("链路追踪初始化失败,继续运行", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					zl.Warn("关闭链路追踪失败", zap.Error(err))
				}
			}()
		}
	}

	engine, cleanup, err := InitializeApp(cfg, zl)
	if err != nil {
		zl.Fatal("初始化应用失败", zap.Error(err))
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zl.Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("服务异常退出", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("正在关闭服务...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("服务关闭超时", zap.Error(err))
	}
	zl.Info("服务已停止")
}
