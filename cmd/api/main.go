package main

import (
	"context"
	"log"

	"ocr-backend/internal/bootstrap"
	"ocr-backend/internal/shared/config"
	"ocr-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	go app.Janitor.Run(context.Background())

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
