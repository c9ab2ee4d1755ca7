package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PLUB2022/plub-server/config"
	"github.com/PLUB2022/plub-server/internal/api/handler"
	"github.com/PLUB2022/plub-server/internal/api/router"
	"github.com/PLUB2022/plub-server/internal/auth"
	"github.com/PLUB2022/plub-server/internal/middleware"
	"github.com/PLUB2022/plub-server/internal/repository"
	"github.com/PLUB2022/plub-server/internal/service"
	"github.com/PLUB2022/plub-server/internal/storage"
	"github.com/PLUB2022/plub-server/pkg/cache"
	"github.com/PLUB2022/plub-server/pkg/database"
	"github.com/PLUB2022/plub-server/pkg/logger"
	"github.com/PLUB2022/plub-server/pkg/tracing"
)

// @title PLUB API
// @version 1.0
// @description 취미 모임 플랫폼 PLUB 백엔드
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Server.Mode, cfg.Log.Level); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	gin.SetMode(cfg.Server.Mode)

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Sentry.Environment,
			SampleRate:       cfg.Sentry.SampleRate,
			AttachStacktrace: true,
		}); err != nil {
			return fmt.Errorf("init sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing)
	if err != nil {
		return err
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	rdb, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	tokens, err := auth.NewTokenProvider(cfg.JWT)
	if err != nil {
		return err
	}
	store := repository.NewStore(db)
	refresh := auth.NewRefreshStore(rdb)
	social, err := auth.NewSocialVerifier(ctx, cfg.OAuth, auth.DefaultEndpoints, nil)
	if err != nil {
		return err
	}

	dispatcher := service.NewDispatcher(store.Notifications, service.LogPusher{}, cfg.Notification.QueueSize)
	stopDispatcher := dispatcher.Start(cfg.Notification.Workers)

	authSvc := service.NewAuthService(store, tokens, refresh, social)
	reports := service.NewReportService(store, dispatcher)
	uploader := storage.NewUploader(cfg.Storage)
	h := handler.New(handler.Services{
		Auth:          authSvc,
		Accounts:      service.NewAccountService(store, social, refresh, uploader),
		Categories:    service.NewCategoryService(store, rdb),
		Plubbings:     service.NewPlubbingService(store, uploader),
		Recruits:      service.NewRecruitService(store, dispatcher, uploader),
		Feeds:         service.NewFeedService(store, dispatcher, reports),
		Todos:         service.NewTodoService(store),
		Notices:       service.NewNoticeService(store),
		Reports:       reports,
		Notifications: service.NewNotificationService(store),
		Uploader:      uploader,
	})

	engine, err := router.New(h, router.Options{
		ServiceName: cfg.Tracing.ServiceName,
		Resolver:    authSvc,
		Limiter:     middleware.NewIPLimiter(cfg.RateLimit),
		FilesURL:    cfg.Storage.BaseURL,
		FilesDir:    uploader.Root(),
		Swagger:     cfg.Server.Mode != gin.ReleaseMode,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", zap.String("addr", srv.Addr), zap.String("mode", cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	// 请求停止后再排空通知队列
	if err := stopDispatcher(shutdownCtx); err != nil {
		logger.Warn("notification queue not drained", zap.Int("pending", dispatcher.QueueLen()), zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("tracing shutdown", zap.Error(err))
	}
	return nil
}
