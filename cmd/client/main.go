package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"logdemo/loghub/internal/config"
	"logdemo/loghub/internal/handler"
	"logdemo/loghub/internal/proxy"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	backend := proxy.NewBackendClient(cfg.Proxy.BackendURL, cfg.Proxy.Timeout)
	proxyHandler := handler.NewProxyHandler(backend, logger)
	router := handler.SetupProxyRouter(cfg, logger, proxyHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Proxy.Host, cfg.Proxy.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Proxy.ReadTimeout,
		WriteTimeout: cfg.Proxy.WriteTimeout,
	}

	go func() {
		logger.Info("proxy starting", zap.String("addr", addr), zap.String("backend", cfg.Proxy.BackendURL))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("proxy failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down proxy...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Proxy.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("proxy forced to shutdown", zap.Error(err))
	}
	logger.Info("proxy exited gracefully")
}
