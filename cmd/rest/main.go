package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pathfinder-be/internal/bootstrap"
	"pathfinder-be/internal/config"
	"pathfinder-be/internal/server"
	"pathfinder-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Close()
	log := container.Logger

	// 3. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracer, log)
	defer shutdownTracer(context.Background())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Start Background Services
	go container.WebSocketHub.Run(ctx)
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Error("MAIN", "Background Consumer Error", map[string]interface{}{"error": err.Error()})
	}

	// Load datasets without blocking the listener; data routes answer 503 meanwhile
	go container.Store.LoadAll(ctx)

	// 5. Initialize Server
	srv := server.New(cfg, container)
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			log.Error("MAIN", "Server shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Error("MAIN", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
