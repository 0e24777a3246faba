package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/naturesnacks/snackstore/api/routes"
	"github.com/naturesnacks/snackstore/internal/cart"
	"github.com/naturesnacks/snackstore/internal/checkout"
	"github.com/naturesnacks/snackstore/internal/orders"
	"github.com/naturesnacks/snackstore/internal/payment"
	"github.com/naturesnacks/snackstore/internal/sessions"
	"github.com/naturesnacks/snackstore/internal/storefront"
	"github.com/naturesnacks/snackstore/internal/submission"
	"github.com/naturesnacks/snackstore/pkg/config"
	"github.com/naturesnacks/snackstore/pkg/db"
	"github.com/naturesnacks/snackstore/pkg/kvstore"
	"github.com/naturesnacks/snackstore/pkg/logger"
	"github.com/naturesnacks/snackstore/pkg/metrics"
	"github.com/naturesnacks/snackstore/pkg/migrate"
	"github.com/naturesnacks/snackstore/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "snackstore-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "snackstore-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack || cfg.App.IsDev(),
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) (err error) {
	var redisClient *redis.Client
	if cfg.Redis.Configured() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return err
		}
		defer func() { err = multierr.Append(err, redisClient.Close()) }()
	}

	var dbClient *db.Client
	if cfg.DB.DSN != "" {
		dbClient, err = db.New(ctx, cfg.DB, logg)
		if err != nil {
			return err
		}
		defer func() { err = multierr.Append(err, dbClient.Close()) }()

		if err := migrate.MaybeRun(ctx, cfg, logg, dbClient); err != nil {
			return err
		}
	}

	backup, err := kvstore.Open(cfg.Backup, redisClient, dbClient)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	email := submission.NewEmailJS(cfg.EmailJS, cfg.Breaker, &http.Client{Timeout: cfg.EmailJS.Timeout})
	webhook := submission.NewWebhook(cfg.Webhook, &http.Client{Timeout: cfg.Webhook.Timeout})
	sequencer, err := submission.NewSequencer(
		submission.NewStoreBackup(backup),
		email,
		webhook,
		metrics.NewSubmissionMetrics(reg),
		logg,
	)
	if err != nil {
		return err
	}

	carts := cart.NewRegistry()
	widget := payment.NewWidget(cfg.Payment)
	if !widget.Ready() {
		logg.Warn(ctx, "razorpay key id not configured, card payments disabled")
	}
	if !cfg.EmailJS.Enabled() {
		logg.Warn(ctx, "emailjs not configured, orders go to the webhook and backup only")
	}

	checkoutService, err := checkout.NewService(carts, widget, sequencer, logg)
	if err != nil {
		return err
	}
	renderer, err := storefront.NewRenderer(carts, checkoutService, logg)
	if err != nil {
		return err
	}
	ordersService, err := orders.NewService(backup)
	if err != nil {
		return err
	}

	sweeper, err := sessions.NewSweeper(sessions.SweeperParams{
		Logger:   logg,
		Targets:  map[string]sessions.Target{"carts": carts, "checkout": checkoutService},
		TTL:      cfg.Session.TTL,
		Interval: cfg.Session.SweepInterval,
	})
	if err != nil {
		return err
	}
	go func() {
		if err := sweeper.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logg.Error(ctx, "session sweeper stopped", err)
		}
	}()

	var limiter redis.RateLimiter
	if redisClient != nil {
		limiter = redisClient
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	logCtx := logg.WithFields(ctx, map[string]any{
		"env":    cfg.App.Env,
		"addr":   addr,
		"backup": cfg.Backup.Driver,
	})
	logg.Info(logCtx, "starting api server")

	// cancelled on shutdown so long-lived cart event streams let Shutdown finish
	baseCtx, cancelBase := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelBase()

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, backup, limiter, reg, carts, renderer, checkoutService, ordersService),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	server.RegisterOnShutdown(cancelBase)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logg.Info(logCtx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
