// Command server runs the feedback HTTP service.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment. A .env file in the working directory is loaded if present.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Ren-zee/exploremore/internal/app"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("application stopped with error", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
