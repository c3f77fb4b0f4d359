package main

import (
	"go.uber.org/zap"

	"team-lunch/config"
	httpapi "team-lunch/order-svc/internal/api/http"
	"team-lunch/order-svc/internal/service"
	"team-lunch/order-svc/internal/storage"
)

func main() {
	settings := config.Load()
	logger := config.MustInitLogger()
	defer logger.Sync()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(settings.OrderEventsTopic)
	defer writer.Close()

	cache := storage.NewRedisCache(rdb, settings.SideDishCacheTTL)
	activity := storage.NewActivityStore(rdb)
	publisher := storage.NewKafkaPublisher(writer)
	formatter := service.NewLocalePriceFormatter(settings.Locale, settings.CurrencySymbol)

	entrySvc := service.NewOrderEntryService(repo, repo, repo, repo, cache, publisher, logger)
	orderSvc := service.NewOrderService(repo, repo, repo, repo, entrySvc,
		service.DefaultQRGenerator{Size: settings.QRSize}, publisher, formatter, logger)
	restSvc := service.NewRestaurantService(repo, repo, cache, activity, logger)
	dishSvc := service.NewDishService(repo, repo, cache, logger)
	notificationSvc := service.NewNotificationService(activity, settings.NotificationLimit)

	handler := httpapi.NewHandler(repo, restSvc, dishSvc, orderSvc, entrySvc, notificationSvc, logger)
	httpapi.StartServer(settings.HTTPAddr, httpapi.NewRouter(handler), logger)
}
