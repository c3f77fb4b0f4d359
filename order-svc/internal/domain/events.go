package domain

import "time"

const (
	EventDishEntryAdded       = "dish_entry_added"
	EventDishEntryRemoved     = "dish_entry_removed"
	EventOrderStateChanged    = "order_state_changed"
	EventPaymentStatusChanged = "payment_status_changed"
)

type KafkaMessage struct {
	Type          string        `json:"type"`
	OrderID       int           `json:"order_id"`
	RestaurantID  int           `json:"restaurant_id"`
	DishID        int           `json:"dish_id,omitempty"`
	UserID        int           `json:"user_id,omitempty"`
	ActorID       int           `json:"actor_id,omitempty"`
	CreatorID     int           `json:"creator_id,omitempty"`
	OrderState    OrderState    `json:"order_state,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
	Participants  []int         `json:"participants,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}
