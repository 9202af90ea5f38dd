package main

import (
	"context"
	"log"

	"interview-assistant-be/internal/bootstrap"
	"interview-assistant-be/internal/config"
	"interview-assistant-be/internal/server"
	"interview-assistant-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 3. Start Background Services
	go container.WebSocketHub.Run()
	if err := container.StatusConsumerService.Consume(context.Background()); err != nil {
		log.Printf("Background status consumer error: %v", err)
	}

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
