package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"Omikuji/internal/config"
	"Omikuji/internal/console"
	"Omikuji/internal/logger"
	"Omikuji/internal/omikuji"
	"Omikuji/internal/scheduler"
	"Omikuji/internal/server"
	"Omikuji/internal/storage"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config validation: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("omikuji starting", "config", cfgPath)

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("load timezone", "timezone", cfg.App.Timezone, "error", err)
	}

	// Init store; history degrades to unavailable rather than blocking draws.
	store, err := storage.Open(storage.Options{
		Backend:    cfg.Storage.Backend,
		FilePath:   cfg.Storage.FilePath,
		SQLitePath: cfg.Storage.SQLitePath,
		Redis: storage.RedisOptions{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
			Prefix:   cfg.Storage.Redis.Prefix,
			Timeout:  cfg.Storage.Redis.Timeout,
		},
	})
	if err != nil {
		log.Warn("init store failed, history disabled", "backend", cfg.Storage.Backend, "error", err)
		store = storage.NewNoopStore()
	} else {
		log.Info("store opened", "backend", cfg.Storage.Backend)
	}
	defer store.Close()

	engine := omikuji.NewEngine(store, nil, log.With("component", "omikuji").Warn, cfg.History.StorageKey, cfg.History.Limit)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(engine, loc, cfg.History.DisplayLimit, log)
	if err := sched.RegisterClock(cfg.Clock.Cron); err != nil {
		log.Fatal("register clock", "error", err)
	}

	if cfg.Console.Enabled {
		con := console.New(os.Stdin, os.Stdout, log)
		sched.OnTick(con.ShowClock)
		con.Print(cfg.App.Greeting)
		go func() {
			if err := con.Run(ctx, sched.HandleCommand); err != nil {
				log.Error("console", "error", err)
			}
		}()
		log.Info("console started")
	}

	sched.Start()
	defer sched.Stop()

	if cfg.Log.Mode == "prod" || cfg.Log.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.NewRouter(server.NewHandler(sched, cfg.App.Greeting), log),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("http server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server", "error", err)
		}
	}()

	log.Info("omikuji is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "error", err)
	}
	log.Info("omikuji stopped")
}
