package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	notifhandler "github.com/paviotti-fleet/monitor/internal/api/handlers/notification"
	"github.com/paviotti-fleet/monitor/internal/api/router"
	"github.com/paviotti-fleet/monitor/internal/api/server"
	"github.com/paviotti-fleet/monitor/internal/config"
	fleetrepo "github.com/paviotti-fleet/monitor/internal/repository/fleet"
	notifrepo "github.com/paviotti-fleet/monitor/internal/repository/notification"
	"github.com/paviotti-fleet/monitor/internal/scheduler"
	notifsvc "github.com/paviotti-fleet/monitor/internal/service/notification"
	"github.com/paviotti-fleet/monitor/pkg/email"
	"github.com/paviotti-fleet/monitor/pkg/external"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	logRepo := notifrepo.NewRepository(db)
	fleetRepo := fleetrepo.NewRepository(db, cfg.Email.FallbackRecipient)

	extClient := external.NewClient(cfg.External.APIURL, cfg.External.APIKey)
	emailGateway := email.NewGateway(email.Settings{
		Enabled:  cfg.Email.Enabled,
		SMTPHost: cfg.Email.SMTPHost,
		SMTPPort: cfg.Email.SMTPPort,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
	})

	service := notifsvc.NewService(logRepo, extClient, emailGateway, rdb, cfg.Webhook.Secret)

	sched, err := scheduler.New(fleetRepo, service, cfg.Retry, scheduler.Options{
		Timezone:   cfg.Alerts.Timezone,
		CronSpecs:  cfg.Alerts.CronSpecs,
		RunOnStart: cfg.Alerts.RunOnStart,
	})
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create scheduler")
	}

	if err := sched.Start(ctx); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to start scheduler")
	}

	handler := notifhandler.NewHandler(service, val, cfg)
	r := router.New(handler, cfg.Auth.JWTSecret)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}
}
