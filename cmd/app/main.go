package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"

	_ "github.com/mmoldabe-dev/subkeep/docs"
	"github.com/mmoldabe-dev/subkeep/internal/config"
	"github.com/mmoldabe-dev/subkeep/internal/handler"
	"github.com/mmoldabe-dev/subkeep/internal/middleware"
	"github.com/mmoldabe-dev/subkeep/internal/repository"
	"github.com/mmoldabe-dev/subkeep/internal/service"
	"github.com/mmoldabe-dev/subkeep/internal/storage/postgres"
	"github.com/mmoldabe-dev/subkeep/internal/storage/redis"
	"github.com/mmoldabe-dev/subkeep/internal/undo"
	"github.com/mmoldabe-dev/subkeep/pkg/logger"
)

//	@title			SubKeep API
//	@version		1.0
//	@description	Subscription expense tracking with what-if simulations and undoable cancellation.

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	// грузим конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("cant load config: %s", err)
		os.Exit(1)
	}

	log := logger.SetupLogger(cfg.Logger.Level, cfg.Logger.Format, "subkeep")

	// запускаем миграции перед стартом
	if err := postgres.RunMigrations(cfg, log); err != nil {
		log.Error("migration failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	db, err := postgres.NewPostgres(cfg, log)
	if err != nil {
		log.Error("db init error", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	// без redis слот отмены и локи живут в памяти процесса
	var (
		store undo.Store      = undo.NewMemoryStore()
		locks undo.UserLocker = undo.NewLocker()
	)
	rdb, err := redis.NewRedis(context.Background(), cfg, log)
	if err != nil {
		log.Error("redis init error", slog.String("err", err.Error()))
		os.Exit(1)
	}
	if rdb != nil {
		defer rdb.Close()
		store = undo.NewRedisStore(rdb, cfg.Redis.UndoPrefix)
		locks = undo.NewRedisLocker(rdb, cfg.Redis.UndoPrefix, log)
	}

	// собираем слои
	subRepo := repository.NewSubscriptionRepository(db, log)
	catRepo := repository.NewCategoryRepository(db, log)

	h := handler.NewHandler(handler.Services{
		Subscriptions: service.NewSubscriptionService(subRepo, catRepo, log),
		Categories:    service.NewCategoryService(catRepo, log),
		Dashboard:     service.NewDashboardService(subRepo, log),
		Simulation:    service.NewSimulationService(subRepo, catRepo, store, locks, log),
	}, log)

	router := h.SetupRouter(middleware.Auth([]byte(cfg.Auth.JWTSecret), log))

	var root http.Handler = router
	root = middleware.RequestIDMiddleware(root)
	root = cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})(root)
	root = middleware.LoggingMiddleware(log)(root)
	root = middleware.RecoverMiddleware(log)(root)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      root,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("server starting...", slog.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen error", slog.String("err", err.Error()))
		}
	}()

	// ждем сигнал на выход
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", slog.String("error", err.Error()))
	}

	log.Info("server stopped")
}
