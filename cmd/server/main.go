// File: cmd/server/main.go
package main

import (
	"context"
	"log" // Standard log for critical startup/shutdown messages before/after zap is active
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitmeet_backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	server, cleanup, err := initializeServer(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize server: %v", err)
	}
	defer cleanup()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("FATAL: Server stopped unexpectedly: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal %s, shutting down...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ServerTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("ERROR: Graceful shutdown failed: %v", err)
		}
		// Give in-flight log writes a moment before cleanup closes the session.
		time.Sleep(100 * time.Millisecond)
	}
}
