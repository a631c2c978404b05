package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"habitdash/internal/app"
	"habitdash/internal/config"
	"habitdash/internal/logger"
	"habitdash/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	if _, err := logger.Init(logger.Config{Level: cfg.LogLevel, Dir: cfg.LogDir, Prefix: "api"}); err != nil {
		log.Fatal("could not init logger", "err", err)
	}

	a, err := app.Open(cfg)
	if err != nil {
		log.Fatal("could not open app", "err", err)
	}
	defer a.Close()

	srv := server.NewServer(a)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting HTTP server", "addr", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Could not start server", "error", err)
			done <- nil
		}
	}()

	<-done
	log.Info("Stopping HTTP server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Could not stop server", "error", err)
	}
}
