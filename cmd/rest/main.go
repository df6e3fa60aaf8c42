package main

import (
	"context"
	"log"

	"ai-docauthor-be/internal/bootstrap"
	"ai-docauthor-be/internal/config"
	"ai-docauthor-be/internal/server"
	"ai-docauthor-be/internal/tracer"
	"ai-docauthor-be/internal/websocket"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start Progress Relay (event bus -> websocket rooms)
	relay := websocket.NewRelay(container.ProgressBus, container.WebSocketHub, container.Logger)
	go func() {
		if err := relay.Run(context.Background()); err != nil {
			log.Printf("Background Relay Error: %v", err)
		}
	}()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
