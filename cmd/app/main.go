package main

import (
	"context"

	"github.com/singhtechie24/Indiana-Hotels-Final/config"
	"github.com/singhtechie24/Indiana-Hotels-Final/di"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	consumer := di.InitializeConsumer()
	go consumer.Run(context.Background())

	http := di.InitializeService()
	http.Serve()
}
