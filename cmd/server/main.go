package main

import (
	"context"
	"log"
	"os/signal"
	"roulette_backend/internal/app"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.NewApp().Run(ctx); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
