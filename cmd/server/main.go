// Command server runs the consultant dispatch API.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables;
// AUTH_API_KEY and DATABASE_DSN are required.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/atendely/dispatch-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
