package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/myryde/myryde-backend/api/pages"
	"github.com/myryde/myryde-backend/api/routes"
	"github.com/myryde/myryde-backend/internal/auth"
	"github.com/myryde/myryde-backend/internal/booking"
	"github.com/myryde/myryde-backend/internal/session"
	"github.com/myryde/myryde-backend/internal/theme"
	"github.com/myryde/myryde-backend/internal/users"
	"github.com/myryde/myryde-backend/pkg/config"
	"github.com/myryde/myryde-backend/pkg/instance"
	"github.com/myryde/myryde-backend/pkg/kv"
	"github.com/myryde/myryde-backend/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := kv.NewRedis(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	userStore := users.NewStore(store, cfg.Storage.UsersKey)

	sessionPointer, err := session.NewPointer(store, cfg.Storage.CurrentUserKey)
	if err != nil {
		logg.Error(context.Background(), "failed to create session pointer", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserStore:      userStore,
		SessionPointer: sessionPointer,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	recoveryService, err := auth.NewRecoveryService(auth.RecoveryServiceParams{
		UserStore:      userStore,
		ResetToken:     cfg.ResetToken,
		PasswordConfig: cfg.Password,
		MailLatency:    cfg.Simulation.MailLatency,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create recovery service", err)
		os.Exit(1)
	}

	themeStore, err := theme.NewStore(store, cfg.Storage.ThemeKey)
	if err != nil {
		logg.Error(context.Background(), "failed to create theme store", err)
		os.Exit(1)
	}

	bookingService := booking.NewService(cfg.Booking)

	renderer, err := pages.NewRenderer(authService, bookingService, themeStore, cfg.Password, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to parse page templates", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			Pinger:      store,
			RateLimiter: store,
			Auth:        authService,
			Recovery:    recoveryService,
			Booking:     bookingService,
			Theme:       themeStore,
			Pages:       renderer,
			Registry:    registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
