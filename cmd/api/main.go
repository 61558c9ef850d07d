package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	adviceadapter "github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/advice"
	dbstore "github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/db"
	filestore "github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/file"
	httpadapter "github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/handlers"
	httpmiddleware "github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/adapter/http/middleware"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/app/service"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/config"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/ports"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	var store ports.StateStore
	switch cfg.StorageDriver {
	case config.StorageDriverMySQL:
		conn, err := dbstore.ConnectDB(cfg)
		if err != nil {
			logger.Fatal("failed to connect to mysql", zap.Error(err))
		}
		defer func() {
			if err := conn.Close(); err != nil {
				logger.Warn("failed to close mysql connection", zap.Error(err))
			}
		}()
		store, err = dbstore.NewStateStore(conn)
		if err != nil {
			logger.Fatal("failed to prepare mysql state store", zap.Error(err))
		}
	default:
		store, err = filestore.NewStateStore(cfg.DataDir)
		if err != nil {
			logger.Fatal("failed to prepare file state store", zap.Error(err))
		}
	}

	taskService := service.NewTaskService(store)
	taskService.Restore(context.Background())

	advisor := adviceadapter.NewGeminiClient(adviceadapter.Config{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	})

	healthHandler := handlers.NewHealthHandler(store)
	taskHandler := handlers.NewTaskHandler(taskService)
	statsHandler := handlers.NewStatsHandler(taskService)
	snapshotHandler := handlers.NewSnapshotHandler(taskService)
	adviceHandler := handlers.NewAdviceHandler(taskService, advisor)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if cfg.TrustedProxies != nil {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, statsHandler, snapshotHandler, adviceHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr), zap.String("storage", cfg.StorageDriver))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
