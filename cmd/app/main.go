package main

import (
	"context"

	"luxedrive/config"
	"luxedrive/di"
	"luxedrive/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()

	ctx := context.Background()

	service.Sweeper.StartSweeper(ctx)
	service.PaymentConsumer.Start(ctx)

	service.HTTP.Serve()
}
