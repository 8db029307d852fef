package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/magnias/quotedesk/internal/config"
	"github.com/magnias/quotedesk/internal/export"
	"github.com/magnias/quotedesk/internal/repository/mongodb"
	"github.com/magnias/quotedesk/internal/repository/sheets"
	"github.com/magnias/quotedesk/internal/scheduler"
	"github.com/magnias/quotedesk/internal/server/handlers"
	"github.com/magnias/quotedesk/internal/server/router"
	analyticssvc "github.com/magnias/quotedesk/internal/service/analytics"
	authsvc "github.com/magnias/quotedesk/internal/service/auth"
	catalogsvc "github.com/magnias/quotedesk/internal/service/catalog"
	quotessvc "github.com/magnias/quotedesk/internal/service/quotes"
	"github.com/magnias/quotedesk/pkg/clients/fxrates"
	"github.com/magnias/quotedesk/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	ledgerCfg, err := config.LoadLedgerConfig(cfg.LedgerFile)
	if err != nil {
		baseLogger.Fatal("failed to load ledger config", zap.Error(err))
	}

	store, err := sheets.NewGoogleSheetStore(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
	if err != nil {
		baseLogger.Fatal("failed to init sheets row store", zap.Error(err))
	}

	auditRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := auditRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	fxClient := fxrates.NewClient(cfg.FX)

	quotesSvc := quotessvc.NewService(store, auditRepo, ledgerCfg, baseLogger.Named("svc.quotes"))
	catalogSvc := catalogsvc.NewService(store, ledgerCfg.Catalog, baseLogger.Named("svc.catalog"))
	analyticsSvc := analyticssvc.NewService(store, fxClient, ledgerCfg, baseLogger.Named("svc.analytics"))
	exportSvc := export.NewService(store, ledgerCfg, baseLogger.Named("svc.export"))
	sessionSvc := authsvc.NewService(cfg.Auth.Users)

	engine := router.New(router.Handlers{
		Auth:      handlers.NewAuthHandler(sessionSvc, baseLogger.Named("handlers.auth")),
		Quotes:    handlers.NewQuoteHandler(quotesSvc, baseLogger.Named("handlers.quotes")),
		Catalog:   handlers.NewCatalogHandler(catalogSvc, baseLogger.Named("handlers.catalog")),
		Analytics: handlers.NewAnalyticsHandler(analyticsSvc, baseLogger.Named("handlers.analytics")),
		Export:    handlers.NewExportHandler(exportSvc, baseLogger.Named("handlers.export")),
	}, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, catalogSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
