package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/numeshj/chatting-app/internal/api"
	"github.com/numeshj/chatting-app/internal/config"
	"github.com/numeshj/chatting-app/internal/logger"
	"github.com/numeshj/chatting-app/internal/metrics"
	"github.com/numeshj/chatting-app/internal/router"
	"github.com/numeshj/chatting-app/internal/ws"
)

func main() {
	cfg, err := config.Load(os.Getenv("APP_CONFIG"))
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	zl, err := logger.New(cfg.App.Env == "development")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	metrics.Init()

	rt := router.New(zl)
	h := ws.NewHandler(rt, cfg, zl)
	app := api.NewServer(h)

	errs := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		zl.Infow("starting chat server", "addr", addr)
		errs <- app.Listen(addr)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case e := <-errs:
		zl.Fatalw("server error", "err", e)
	case s := <-sig:
		zl.Infow("signal received", "signal", s.String())
	}

	if err := app.Shutdown(); err != nil {
		zl.Warnw("shutdown", "err", err)
	}
	zl.Info("shut down")
}
