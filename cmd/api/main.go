// @title           Todo & Invoice API
// @version         1.0
// @description     Todo and invoice CRUD API.
// @host            localhost:8080
// @BasePath        /api/v1
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskbill/internal/app"
	"taskbill/internal/config"
	"taskbill/internal/platform/logger"

	_ "taskbill/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger mode comes from config, so this one goes through a default logger
		if l, lerr := logger.New("prod"); lerr == nil {
			l.Fatal("config", "error", err)
		}
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.Env)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("config loaded, connecting to DB", "env", cfg.App.Env, "version", cfg.App.Version)

	application, err := app.New(cfg, log)
	if err != nil {
		log.Fatal("app init", "error", err)
	}
	log.Info("app ready, starting HTTP server")
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	go func() {
		log.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	if err := application.Close(); err != nil {
		log.Error("app close", "error", err)
	}
}
