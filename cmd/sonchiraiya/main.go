// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Sonchiraiya site server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sonchiraiya/internal/api"
	"sonchiraiya/internal/config"
	"sonchiraiya/internal/database"
	"sonchiraiya/internal/flash"
	"sonchiraiya/internal/handlers"
	"sonchiraiya/internal/metrics"
	"sonchiraiya/internal/middleware"
	"sonchiraiya/internal/render"
	"sonchiraiya/internal/router"
	"sonchiraiya/internal/session"
	"sonchiraiya/internal/store"
	"sonchiraiya/internal/valkey"
)

func main() {
	// Text logs while developing, JSON everywhere else.
	level := slog.LevelInfo
	if os.Getenv("APP_ENV") == "" || os.Getenv("APP_ENV") == "development" {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if level == slog.LevelDebug {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("configuration loaded", "config", cfg)

	ctx := context.Background()
	secureCookies := !cfg.IsDev()

	// Valkey holds admin sessions.
	valkeyClient, err := valkey.Connect(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	checks := map[string]router.HealthCheck{
		"valkey": func(ctx context.Context) error { return valkey.Ping(ctx, valkeyClient) },
	}

	// The sync log is optional; the site works without a database.
	var db *sql.DB
	var syncLog *store.SyncLogStore
	if cfg.DBDriver != "" {
		db, err = database.Connect(cfg.DBDriver, cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db, cfg.DBDriver); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		syncLog = store.NewSyncLogStore(db, cfg.DBDriver == database.DriverPostgres)
		checks["database"] = db.PingContext
	} else {
		slog.Warn("DB_DRIVER not set, admin sync log disabled")
	}

	m := metrics.New()

	client, err := api.New(cfg.APIBaseURL, cfg.APITimeout, api.WithObserver(m.ObserveAPI))
	if err != nil {
		slog.Error("failed to create api client", "error", err)
		os.Exit(1)
	}
	resources := api.NewResources(client)

	fl := flash.New([]byte(cfg.SessionSecret), secureCookies)
	renderer, err := render.New(render.Options{
		DevMode:  cfg.IsDev(),
		ImageURL: client.UploadURL,
		Flash:    fl,
	})
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	sessionStore := session.NewStore(valkeyClient, secureCookies, cfg.SessionTTL)

	authHandlers := handlers.NewAuth(renderer, client, sessionStore, fl)
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, time.Minute).
		OnLimit(http.HandlerFunc(authHandlers.LoginLimited))
	defer loginLimiter.Stop()

	r := router.New(router.Deps{
		Admin:        handlers.NewAdmin(renderer, client, resources, syncLog, m, fl),
		Auth:         authHandlers,
		Public:       handlers.NewPublic(renderer, resources, fl, secureCookies),
		Sessions:     sessionStore,
		LoginLimiter: loginLimiter,
		Metrics:      m,
		Checks:       checks,
		APIBaseURL:   cfg.APIBaseURL,
		Secure:       secureCookies,
	})

	// WriteTimeout leaves room for the backend timeout plus an upload.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.APITimeout + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
