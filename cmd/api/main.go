package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/techgyrl/BadgeBoost/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load .env + config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server until interrupted.
func main() {
	_ = godotenv.Load()

	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Printf("close api app: %v", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run api app: %v", err)
	}
}
