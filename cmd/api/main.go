package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "github.com/andyizyfleyr/banque-web-app-sub000/internal/adapter/http"
	"github.com/andyizyfleyr/banque-web-app-sub000/internal/adapter/middleware"
	"github.com/andyizyfleyr/banque-web-app-sub000/internal/adapter/repository/mysql"
	"github.com/andyizyfleyr/banque-web-app-sub000/internal/config"
	"github.com/andyizyfleyr/banque-web-app-sub000/internal/infrastructure/cache"
	"github.com/andyizyfleyr/banque-web-app-sub000/internal/infrastructure/db"
	"github.com/andyizyfleyr/banque-web-app-sub000/internal/infrastructure/notify"
	appusecase "github.com/andyizyfleyr/banque-web-app-sub000/internal/usecase/application"
	decisionUC "github.com/andyizyfleyr/banque-web-app-sub000/internal/usecase/decision"
	"github.com/andyizyfleyr/banque-web-app-sub000/internal/usecase/wizard"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), logger)
	if err != nil {
		logger.Fatal("mysql", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatal("redis", zap.Error(err))
	}

	// repositories + unit of work
	appRepo := mysql.NewApplicationRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	// usecases
	listCache := cache.NewApplicationListCache(rdb, time.Duration(cfg.ListCacheTTLSecs)*time.Second)
	apps := appusecase.NewUsecase(appRepo, listCache, logger)
	decisions := decisionUC.NewUsecase(guow, logger)
	mgr := wizard.NewManager(appRepo, apps, notify.NewZapNotifier(logger), logger)

	// handlers
	h := httpadp.NewHandler()
	loans := httpadp.NewLoanHandler(apps)
	wizards := httpadp.NewWizardHandler(mgr, cfg.DefaultCurrency)
	decide := httpadp.NewDecisionHandler(decisions)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/loans/simulate", loans.Simulate)
	v1.GET("/users/:user_id/loans", loans.ListApplications)
	v1.POST("/loans/:application_id/decision", decide.Decide, idemp)

	v1.POST("/wizard", wizards.Start)
	v1.GET("/wizard/:session_id", wizards.Get)
	v1.POST("/wizard/:session_id/events", wizards.ApplyEvent)
	v1.POST("/wizard/:session_id/submit", wizards.Submit, idemp)

	addr := ":" + cfg.AppPort
	logger.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
