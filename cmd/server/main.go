package main

import (
	"context"
	"log"
	"net/http"

	_ "medilog/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"medilog/internal/cache"
	"medilog/internal/chat"
	"medilog/internal/config"
	"medilog/internal/db"
	"medilog/internal/handler"
	"medilog/internal/logger"
	"medilog/internal/model"
	"medilog/internal/repository"
	"medilog/internal/router"
	"medilog/internal/service"
	"medilog/internal/store"
	"medilog/internal/tips"
	"medilog/internal/vision"
)

// @title Health Tracking API
// @version 1.0
// @description Patient medication and mood logging with photo text extraction, condition precautions, and a keyword health assistant.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.LogDev)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()

	realtimeDB, err := store.NewRealtimeDatabase(ctx, cfg.FirebaseDatabaseURL, cfg.FirebaseCredentialsFile)
	if err != nil {
		zlog.Fatalf("log store init: %v", err)
	}

	annotator, closeAnnotator, err := vision.NewAnnotator(ctx)
	if err != nil {
		zlog.Fatalf("recognition client init: %v", err)
	}
	defer func() { _ = closeAnnotator() }()

	// Registry backend: volatile by default, MySQL when configured.
	var userRepo repository.UserRepository
	switch cfg.UserStore {
	case "mysql":
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			zlog.Fatalf("database init: %v", err)
		}
		if err := gormDB.AutoMigrate(&model.User{}); err != nil {
			zlog.Fatalf("auto-migrate: %v", err)
		}
		userRepo = repository.NewMySQLUserRepository(gormDB)
	default:
		userRepo = repository.NewMemoryUserRepository()
	}
	zlog.Infof("user registry backend: %s", cfg.UserStore)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	tipsTable := tips.Load(cfg.TipsFile, zlog)

	// Initialize repositories
	medicationRepo := repository.NewMedicationLogRepository(realtimeDB)
	moodRepo := repository.NewMoodLogRepository(realtimeDB)

	// Initialize services
	userService := service.NewUserService(userRepo)
	medicationService := service.NewMedicationService(medicationRepo, cacheClient, cfg.HistoryCacheTTL, cfg.StoreTimeout)
	moodService := service.NewMoodService(moodRepo, cacheClient, cfg.HistoryCacheTTL, cfg.StoreTimeout)
	scanService := service.NewScanService(annotator, cfg.VisionTimeout)
	tipsService := service.NewTipsService(userRepo, tipsTable)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	medicationHandler := handler.NewMedicationHandler(medicationService)
	moodHandler := handler.NewMoodHandler(moodService)
	scanHandler := handler.NewScanHandler(scanService)
	tipsHandler := handler.NewTipsHandler(tipsService)
	chatHandler := handler.NewChatHandler(chat.DefaultMatcher())

	e := echo.New()
	e.Use(echomw.RequestID())

	// Register routes
	router.Register(
		e,
		userHandler,
		medicationHandler,
		moodHandler,
		scanHandler,
		tipsHandler,
		chatHandler,
	)

	addr := ":" + cfg.ServerPort
	zlog.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		zlog.Fatalf("server start: %v", err)
	}
}
