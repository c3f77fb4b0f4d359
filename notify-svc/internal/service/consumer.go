package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"team-lunch/notify-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger *zap.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader: reader,
		Store:  store,
		Logger: logger,
	}
}

// Start reads order events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("starting order events consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.Logger.Info("order events consumer stopped")
				return
			}
			c.Logger.Error("error reading message", zap.Error(err))
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.Logger.Warn("error unmarshaling message", zap.ByteString("key", message.Key), zap.Error(err))
			continue
		}

		if err := c.ProcessEvent(ctx, msg); err != nil {
			c.Logger.Error("error processing event",
				zap.String("type", msg.Type),
				zap.Int("order_id", msg.OrderID),
				zap.Error(err))
		}
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, msg domain.KafkaMessage) error {
	day := msg.Timestamp
	if day.IsZero() {
		day = time.Now()
	}

	switch msg.Type {
	case domain.EventDishEntryAdded:
		return c.Store.IncrementDish(ctx, msg.RestaurantID, msg.DishID, day)
	case domain.EventDishEntryRemoved:
		return c.Store.DecrementDish(ctx, msg.RestaurantID, msg.DishID, day)
	case domain.EventOrderStateChanged:
		return c.notifyParticipants(ctx, msg, day)
	case domain.EventPaymentStatusChanged:
		return c.notifyCreator(ctx, msg, day)
	default:
		c.Logger.Debug("ignoring event", zap.String("type", msg.Type))
		return nil
	}
}

// notifyParticipants tells everyone with an entry on the order, except whoever
// changed the state.
func (c *Consumer) notifyParticipants(ctx context.Context, msg domain.KafkaMessage, day time.Time) error {
	n := domain.Notification{
		OrderID:   msg.OrderID,
		Message:   fmt.Sprintf("Order %d is now %s", msg.OrderID, msg.OrderState),
		Timestamp: day.Unix(),
	}

	seen := make(map[int]struct{}, len(msg.Participants))
	var errs []error
	for _, userID := range msg.Participants {
		if userID == msg.ActorID {
			continue
		}
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}
		if err := c.Store.PushNotification(ctx, userID, n); err != nil {
			errs = append(errs, fmt.Errorf("user %d: %w", userID, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Consumer) notifyCreator(ctx context.Context, msg domain.KafkaMessage, day time.Time) error {
	if msg.PaymentStatus != domain.PaymentStatusMarked || msg.CreatorID == 0 || msg.CreatorID == msg.UserID {
		return nil
	}
	return c.Store.PushNotification(ctx, msg.CreatorID, domain.Notification{
		OrderID:   msg.OrderID,
		Message:   fmt.Sprintf("User %d marked their entry in order %d as paid", msg.UserID, msg.OrderID),
		Timestamp: day.Unix(),
	})
}
