package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tavola/internal/commons"
	"tavola/internal/infrastructure/logger"
	"tavola/internal/infrastructure/mysql"
	"tavola/internal/loyalty"
	"tavola/internal/menu"
	"tavola/internal/notification"
	"tavola/internal/order"
	"tavola/internal/scheduling"
	"tavola/internal/server"
	"tavola/internal/validation"
)

func main() {
	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	validate := validation.New()
	mailer := notification.NewHTTPMailer(cfg.Mail)

	menuModule := menu.NewModule(db, validate, zapLogger)
	schedulingModule := scheduling.NewModule(db, cfg.Scheduling, validate, zapLogger)
	loyaltyModule := loyalty.NewModule(db, validate, zapLogger)
	orderModule := order.NewModule(
		db,
		cfg,
		schedulingModule.Service,
		menuModule.Repository,
		mailer,
		loyaltyModule.Service,
		validate,
		zapLogger,
	)

	router := server.NewRouter(menuModule, schedulingModule, orderModule, loyaltyModule, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
