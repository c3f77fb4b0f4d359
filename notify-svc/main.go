package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"team-lunch/config"
	"team-lunch/notify-svc/internal/service"
	"team-lunch/notify-svc/internal/storage"
)

func main() {
	settings := config.Load()
	logger := config.MustInitLogger()
	defer logger.Sync()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(settings.OrderEventsTopic, settings.NotifyGroupID)
	defer reader.Close()

	store := storage.NewStore(rdb, settings.ActivityTTL, settings.NotificationLimit)
	consumer := service.NewConsumer(reader, store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.Start(ctx)
}
