package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/alpstech-academy-api/api/swagger"
	"github.com/noah-isme/alpstech-academy-api/internal/handler"
	"github.com/noah-isme/alpstech-academy-api/internal/repository"
	"github.com/noah-isme/alpstech-academy-api/internal/seed"
	"github.com/noah-isme/alpstech-academy-api/internal/service"
	"github.com/noah-isme/alpstech-academy-api/pkg/config"
	"github.com/noah-isme/alpstech-academy-api/pkg/export"
	"github.com/noah-isme/alpstech-academy-api/pkg/kvstore"
	"github.com/noah-isme/alpstech-academy-api/pkg/logger"
)

// @title AlpsTech Academy API
// @version 0.1.0
// @description Course catalog, student results and admin console
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	metrics := service.NewMetricsService()

	primary, err := kvstore.Open(ctx, cfg)
	if err != nil {
		logr.Warn("storage unavailable, serving from memory", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
		metrics.RecordStorageFallback(err)
		primary = nil
	}
	store := kvstore.NewFallback(primary, kvstore.WithLogger(logr), kvstore.OnFallback(metrics.RecordStorageFallback))
	defer store.Close() //nolint:errcheck

	scheme := service.NewCredentialScheme(cfg.Auth.CredentialScheme)
	seedAccounts, err := service.SealAccounts(scheme, seed.Accounts())
	if err != nil {
		logr.Fatal("failed to seal seed accounts", zap.Error(err))
	}

	accounts := repository.NewAccountRepository(store, seedAccounts, logr)
	if err := accounts.Load(ctx); err != nil {
		logr.Fatal("failed to load accounts", zap.Error(err))
	}
	if migrated, err := service.MigrateCredentials(ctx, accounts, scheme); err != nil {
		logr.Fatal("failed to migrate stored credentials", zap.Error(err))
	} else if migrated > 0 {
		logr.Info("stored credentials resealed", zap.String("scheme", scheme.Name()), zap.Int("accounts", migrated))
	}
	sessionRepo := repository.NewSessionRepository(store, logr)

	validate := validator.New()
	notifier := service.NewLogNotifier(logr)
	data := service.SeedDatasets()

	sessions := service.NewSessionService(accounts, sessionRepo, scheme, validate, notifier, metrics, logr, service.SessionConfig{
		SimulatedLatency: cfg.Auth.SimulatedLatency,
	})
	enrollment := service.NewEnrollmentService(sessions, accounts, data.Courses, notifier, metrics, logr)
	catalogSvc := service.NewCatalogService(data, sessions, enrollment, validate, logr)
	sessions.Observe(catalogSvc.ResetOverlay)
	exports := service.NewExportService(catalogSvc, export.NewExporter(), logr)

	if restored, err := sessions.Restore(ctx); err != nil {
		logr.Warn("session restore failed", zap.Error(err))
	} else if restored != nil {
		logr.Info("session restored", zap.String("account_id", restored.ID))
	}

	r := handler.NewRouter(handler.RouterDeps{
		Config:   cfg,
		Logger:   logr,
		Metrics:  metrics,
		Sessions: sessions,
		Storage:  store,
		Auth:     handler.NewAuthHandler(sessions),
		Courses:  handler.NewCourseHandler(catalogSvc, enrollment, sessions),
		Me:       handler.NewMeHandler(catalogSvc, exports),
		Admin:    handler.NewAdminHandler(catalogSvc, exports),
		System:   handler.NewMetricsHandler(metrics, store),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "storage", cfg.Storage.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
