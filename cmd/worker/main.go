package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"atria/config"
	"atria/di"
	"atria/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	worker := di.InitializeNotifier()
	worker.Run(ctx)
}
