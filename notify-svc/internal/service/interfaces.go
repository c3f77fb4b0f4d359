package service

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"team-lunch/notify-svc/internal/domain"
	"team-lunch/notify-svc/internal/storage"
)

type StoreInterface interface {
	IncrementDish(ctx context.Context, restaurantID, dishID int, day time.Time) error
	DecrementDish(ctx context.Context, restaurantID, dishID int, day time.Time) error
	PushNotification(ctx context.Context, userID int, n domain.Notification) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, msg domain.KafkaMessage) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
