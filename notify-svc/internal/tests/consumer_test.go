package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"team-lunch/notify-svc/internal/domain"
	"team-lunch/notify-svc/internal/mocks"
	"team-lunch/notify-svc/internal/service"
)

var eventTime = time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

func TestConsumer_ProcessEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		inputMessage   domain.KafkaMessage
		setupMockStore func(*mocks.StoreInterface)
		expectError    bool
	}{
		{
			name: "dish entry added",
			inputMessage: domain.KafkaMessage{
				Type:         domain.EventDishEntryAdded,
				OrderID:      1,
				RestaurantID: 10,
				DishID:       9,
				Timestamp:    eventTime,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("IncrementDish", ctx, 10, 9, eventTime).Return(nil).Once()
			},
		},
		{
			name: "dish entry removed",
			inputMessage: domain.KafkaMessage{
				Type:         domain.EventDishEntryRemoved,
				RestaurantID: 10,
				DishID:       9,
				Timestamp:    eventTime,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("DecrementDish", ctx, 10, 9, eventTime).Return(nil).Once()
			},
		},
		{
			name: "redis error is returned",
			inputMessage: domain.KafkaMessage{
				Type:         domain.EventDishEntryAdded,
				RestaurantID: 10,
				DishID:       9,
				Timestamp:    eventTime,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("IncrementDish", ctx, 10, 9, eventTime).Return(errors.New("redis error")).Once()
			},
			expectError: true,
		},
		{
			name: "state change notifies participants except the actor",
			inputMessage: domain.KafkaMessage{
				Type:         domain.EventOrderStateChanged,
				OrderID:      1,
				ActorID:      100,
				OrderState:   "ORDERED",
				Participants: []int{100, 200, 300, 200},
				Timestamp:    eventTime,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				expected := domain.Notification{OrderID: 1, Message: "Order 1 is now ORDERED", Timestamp: eventTime.Unix()}
				mockStore.On("PushNotification", ctx, 200, expected).Return(nil).Once()
				mockStore.On("PushNotification", ctx, 300, expected).Return(nil).Once()
			},
		},
		{
			name: "one failed inbox does not stop the others",
			inputMessage: domain.KafkaMessage{
				Type:         domain.EventOrderStateChanged,
				OrderID:      1,
				ActorID:      100,
				OrderState:   "DELIVERED",
				Participants: []int{200, 300},
				Timestamp:    eventTime,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("PushNotification", ctx, 200, mock.Anything).Return(errors.New("redis error")).Once()
				mockStore.On("PushNotification", ctx, 300, mock.Anything).Return(nil).Once()
			},
			expectError: true,
		},
		{
			name: "marked payment notifies the creator",
			inputMessage: domain.KafkaMessage{
				Type:          domain.EventPaymentStatusChanged,
				OrderID:       1,
				UserID:        200,
				CreatorID:     100,
				PaymentStatus: domain.PaymentStatusMarked,
				Timestamp:     eventTime,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("PushNotification", ctx, 100, mock.MatchedBy(func(n domain.Notification) bool {
					return n.OrderID == 1 && n.Message == "User 200 marked their entry in order 1 as paid"
				})).Return(nil).Once()
			},
		},
		{
			name: "confirmed payment is not announced",
			inputMessage: domain.KafkaMessage{
				Type:          domain.EventPaymentStatusChanged,
				OrderID:       1,
				UserID:        200,
				CreatorID:     100,
				PaymentStatus: "CONFIRMED",
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
		{
			name: "creator marking own entry",
			inputMessage: domain.KafkaMessage{
				Type:          domain.EventPaymentStatusChanged,
				UserID:        100,
				CreatorID:     100,
				PaymentStatus: domain.PaymentStatusMarked,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
		{
			name:           "unknown type",
			inputMessage:   domain.KafkaMessage{Type: "new_review", DishID: 1},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := service.NewConsumer(nil, mockStore, nil)

			err := consumer.ProcessEvent(ctx, testCase.inputMessage)
			if testCase.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConsumer_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(map[string]interface{}{
		"type":          domain.EventDishEntryAdded,
		"order_id":      1,
		"restaurant_id": 10,
		"dish_id":       9,
		"timestamp":     eventTime,
	})
	require.NoError(t, err)

	reader := mocks.NewMessageReader(t)
	store := mocks.NewStoreInterface(t)

	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Key: []byte("1"), Value: payload}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("{broken")}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, errors.New("broker unavailable")).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, context.Canceled).
		Run(func(mock.Arguments) { cancel() }).Once()
	store.On("IncrementDish", mock.Anything, 10, 9, mock.MatchedBy(func(day time.Time) bool {
		return day.Equal(eventTime)
	})).Return(nil).Once()

	done := make(chan struct{})
	go func() {
		service.NewConsumer(reader, store, nil).Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}
}
