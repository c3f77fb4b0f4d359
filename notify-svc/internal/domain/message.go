package domain

import "time"

const (
	EventDishEntryAdded       = "dish_entry_added"
	EventDishEntryRemoved     = "dish_entry_removed"
	EventOrderStateChanged    = "order_state_changed"
	EventPaymentStatusChanged = "payment_status_changed"

	PaymentStatusMarked = "MARKED"
)

// KafkaMessage mirrors the order-svc event payload.
type KafkaMessage struct {
	Type          string    `json:"type"`
	OrderID       int       `json:"order_id"`
	RestaurantID  int       `json:"restaurant_id"`
	DishID        int       `json:"dish_id"`
	UserID        int       `json:"user_id"`
	ActorID       int       `json:"actor_id"`
	CreatorID     int       `json:"creator_id"`
	OrderState    string    `json:"order_state"`
	PaymentStatus string    `json:"payment_status"`
	Participants  []int     `json:"participants"`
	Timestamp     time.Time `json:"timestamp"`
}

type Notification struct {
	OrderID   int    `json:"orderId"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}
