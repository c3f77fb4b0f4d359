package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"team-lunch/order-svc/internal/domain"
)

type OrderEntryService struct {
	orders      OrderRepository
	entries     OrderEntryRepository
	dishes      DishRepository
	restaurants RestaurantRepository
	cache       SideDishCache
	publisher   EventPublisher
	logger      *zap.Logger
	newID       func() string
}

func NewOrderEntryService(
	orders OrderRepository,
	entries OrderEntryRepository,
	dishes DishRepository,
	restaurants RestaurantRepository,
	cache SideDishCache,
	publisher EventPublisher,
	logger *zap.Logger,
) *OrderEntryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderEntryService{
		orders:      orders,
		entries:     entries,
		dishes:      dishes,
		restaurants: restaurants,
		cache:       cache,
		publisher:   publisher,
		logger:      logger,
		newID:       func() string { return uuid.NewString() },
	}
}

// SaveEntry adds one dish entry for user to the order, creating the user's
// order entry on first use.
func (s *OrderEntryService) SaveEntry(ctx context.Context, user *domain.User, req *domain.OrderEntrySaveRequest) (*domain.OrderEntry, error) {
	order, err := s.orders.GetOrder(req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}

	restaurant, err := s.restaurants.GetRestaurant(order.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurant: %w", err)
	}
	if restaurant == nil || restaurant.TeamID != user.TeamID {
		return nil, domain.ErrNoAccessToOrder
	}

	if IsOrderLockedFor(order, user.ID) {
		return nil, domain.ErrOrderLocked
	}

	dish, isNewDish, err := s.resolveDishForSave(order, req)
	if err != nil {
		return nil, err
	}

	chosen, created, err := s.resolveSideDishesForSave(dish, req.SideDishes)
	if err != nil {
		return nil, err
	}

	if isNewDish {
		dish.SideDishes = created
		if err := s.dishes.CreateDish(dish); err != nil {
			return nil, fmt.Errorf("failed to create dish: %w", err)
		}
		s.logger.Info("created dish inline",
			zap.Int("dish_id", dish.ID),
			zap.Int("restaurant_id", dish.RestaurantID),
			zap.Int("user_id", user.ID))
	} else {
		for _, sd := range created {
			if err := s.dishes.AddSideDish(dish.ID, sd); err != nil {
				return nil, fmt.Errorf("failed to add side dish: %w", err)
			}
			dish.SideDishes = append(dish.SideDishes, sd)
		}
	}
	if isNewDish || len(created) > 0 {
		s.invalidate(ctx, order.RestaurantID)
	}

	entry, err := s.entries.FindByOrderAndUser(order.ID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order entry: %w", err)
	}

	dishEntry := domain.DishEntry{
		ID:                 s.newID(),
		Dish:               dishReference(dish),
		ChosenSideDishes:   chosen,
		AdditionalComments: req.AdditionalComments,
	}

	if entry != nil {
		entry.DishEntries = append(entry.DishEntries, dishEntry)
	} else {
		entry = &domain.OrderEntry{
			OrderID:       order.ID,
			UserID:        user.ID,
			DishEntries:   []domain.DishEntry{dishEntry},
			PaymentStatus: domain.PaymentStatusNone,
		}
	}

	if err := s.entries.SaveOrderEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to save order entry: %w", err)
	}

	s.publish(ctx, domain.KafkaMessage{
		Type:         domain.EventDishEntryAdded,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		DishID:       dish.ID,
		UserID:       user.ID,
		ActorID:      user.ID,
		Timestamp:    order.OrderDate,
	})

	return entry, nil
}

// IsOrderLockedFor reports whether userID may no longer write entries on the
// order. The creator keeps access until the order is rejected.
func IsOrderLockedFor(order *domain.Order, userID int) bool {
	if order.State == domain.OrderStateRejected {
		return true
	}
	return order.State != domain.OrderStateCreated && order.CreatorID != userID
}

func (s *OrderEntryService) resolveDishForSave(order *domain.Order, req *domain.OrderEntrySaveRequest) (*domain.Dish, bool, error) {
	if req.NewDish {
		if isBlank(req.NewDishName) {
			return nil, false, domain.ErrDishNameBlank
		}
		if req.NewDishPrice == nil || *req.NewDishPrice < 0 {
			return nil, false, domain.ErrDishPriceInvalid
		}
		return &domain.Dish{
			RestaurantID: order.RestaurantID,
			Name:         strings.TrimSpace(req.NewDishName),
			Price:        *req.NewDishPrice,
		}, true, nil
	}

	dish, err := s.dishes.GetDish(req.DishID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load dish: %w", err)
	}
	if dish == nil || dish.RestaurantID != order.RestaurantID {
		return nil, false, domain.ErrDishNotFound
	}
	return dish, false, nil
}

// resolveSideDishesForSave validates every selection before anything is
// written. created holds the side dishes that still have to be persisted.
func (s *OrderEntryService) resolveSideDishesForSave(dish *domain.Dish, selections []domain.SideDishData) (chosen, created []domain.SideDish, err error) {
	chosen = make([]domain.SideDish, 0, len(selections))
	for _, sel := range selections {
		if sel.IsNew {
			if isBlank(sel.NewSideDishName) {
				return nil, nil, domain.ErrSideDishNameBlank
			}
			if sel.NewSideDishPrice == nil || *sel.NewSideDishPrice < 0 {
				return nil, nil, domain.ErrSideDishPriceInvalid
			}
			sd := domain.SideDish{
				ID:    s.newID(),
				Name:  strings.TrimSpace(sel.NewSideDishName),
				Price: *sel.NewSideDishPrice,
			}
			created = append(created, sd)
			chosen = append(chosen, sd)
			continue
		}

		sd, ok := dish.FindSideDish(sel.ID)
		if !ok {
			return nil, nil, domain.ErrSideDishNotFound
		}
		chosen = append(chosen, sd)
	}
	return chosen, created, nil
}

// UpdateEntry replaces one dish entry in place. Inline creation here is
// looser than in SaveEntry: blank names fall back to a lookup, missing prices
// become zero and unknown side dishes are dropped. Ownership and order state
// are checked by the caller.
func (s *OrderEntryService) UpdateEntry(ctx context.Context, req *domain.OrderEntryUpdateRequest) (*domain.OrderEntry, error) {
	entry, err := s.entries.GetOrderEntry(req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order entry: %w", err)
	}
	if entry == nil {
		return nil, domain.ErrOrderEntryNotFound
	}

	idx := entry.DishEntryIndex(req.DishEntryID)
	if idx < 0 {
		return nil, domain.ErrDishEntryNotFound
	}

	order, err := s.orders.GetOrder(entry.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}

	var dish *domain.Dish
	mutated := false
	if req.NewDish && !isBlank(req.NewDishName) {
		dish = &domain.Dish{
			RestaurantID: order.RestaurantID,
			Name:         strings.TrimSpace(req.NewDishName),
			Price:        intOrZero(req.NewDishPrice),
		}
		if err := s.dishes.CreateDish(dish); err != nil {
			return nil, fmt.Errorf("failed to create dish: %w", err)
		}
		mutated = true
	} else {
		dish, err = s.dishes.GetDish(req.DishID)
		if err != nil {
			return nil, fmt.Errorf("failed to load dish: %w", err)
		}
		if dish == nil {
			return nil, domain.ErrDishNotFound
		}
	}

	chosen := make([]domain.SideDish, 0, len(req.SideDishes))
	for _, sel := range req.SideDishes {
		if sel.IsNew && !isBlank(sel.NewSideDishName) {
			sd := domain.SideDish{
				ID:    s.newID(),
				Name:  strings.TrimSpace(sel.NewSideDishName),
				Price: intOrZero(sel.NewSideDishPrice),
			}
			if err := s.dishes.AddSideDish(dish.ID, sd); err != nil {
				return nil, fmt.Errorf("failed to add side dish: %w", err)
			}
			dish.SideDishes = append(dish.SideDishes, sd)
			chosen = append(chosen, sd)
			mutated = true
			continue
		}
		if sd, ok := dish.FindSideDish(sel.ID); ok {
			chosen = append(chosen, sd)
		}
	}
	if mutated {
		s.invalidate(ctx, order.RestaurantID)
	}

	entry.DishEntries[idx] = domain.DishEntry{
		ID:                 req.DishEntryID,
		Dish:               dishReference(dish),
		ChosenSideDishes:   chosen,
		AdditionalComments: req.AdditionalComments,
	}

	if err := s.entries.SaveOrderEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to save order entry: %w", err)
	}
	return entry, nil
}

// DeleteOrderEntry removes one dish entry; the order entry goes with its last
// dish entry.
func (s *OrderEntryService) DeleteOrderEntry(ctx context.Context, orderEntryID int, dishEntryID string) error {
	entry, err := s.entries.GetOrderEntry(orderEntryID)
	if err != nil {
		return fmt.Errorf("failed to load order entry: %w", err)
	}
	if entry == nil {
		return domain.ErrOrderEntryNotFound
	}

	idx := entry.DishEntryIndex(dishEntryID)
	if idx < 0 {
		return domain.ErrDishEntryNotFound
	}
	removed := entry.DishEntries[idx]

	remaining := make([]domain.DishEntry, 0, len(entry.DishEntries)-1)
	remaining = append(remaining, entry.DishEntries[:idx]...)
	remaining = append(remaining, entry.DishEntries[idx+1:]...)

	if len(remaining) == 0 {
		if err := s.entries.DeleteOrderEntry(entry.ID); err != nil {
			return fmt.Errorf("failed to delete order entry: %w", err)
		}
	} else {
		entry.DishEntries = remaining
		if err := s.entries.SaveOrderEntry(entry); err != nil {
			return fmt.Errorf("failed to save order entry: %w", err)
		}
	}

	msg := domain.KafkaMessage{
		Type:    domain.EventDishEntryRemoved,
		OrderID: entry.OrderID,
		DishID:  removed.Dish.ID,
		UserID:  entry.UserID,
		ActorID: entry.UserID,
	}
	if order := s.eventOrder(entry.OrderID); order != nil {
		msg.RestaurantID = order.RestaurantID
		msg.Timestamp = order.OrderDate
	}
	s.publish(ctx, msg)
	return nil
}

func (s *OrderEntryService) SetAsMarkedAsPaid(ctx context.Context, orderEntryID int) (*domain.OrderEntry, error) {
	return s.setPaymentStatus(ctx, orderEntryID, func(entry *domain.OrderEntry) {
		if entry.PaymentStatus != domain.PaymentStatusConfirmed {
			entry.PaymentStatus = domain.PaymentStatusMarked
		}
	})
}

func (s *OrderEntryService) SetAsConfirmedAsPaid(ctx context.Context, orderEntryID int) (*domain.OrderEntry, error) {
	return s.setPaymentStatus(ctx, orderEntryID, func(entry *domain.OrderEntry) {
		entry.PaymentStatus = domain.PaymentStatusConfirmed
	})
}

func (s *OrderEntryService) setPaymentStatus(ctx context.Context, orderEntryID int, apply func(*domain.OrderEntry)) (*domain.OrderEntry, error) {
	entry, err := s.entries.GetOrderEntry(orderEntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order entry: %w", err)
	}
	if entry == nil {
		return nil, domain.ErrOrderEntryNotFound
	}

	apply(entry)

	if err := s.entries.SaveOrderEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to save order entry: %w", err)
	}

	msg := domain.KafkaMessage{
		Type:          domain.EventPaymentStatusChanged,
		OrderID:       entry.OrderID,
		UserID:        entry.UserID,
		PaymentStatus: entry.PaymentStatus,
	}
	if order := s.eventOrder(entry.OrderID); order != nil {
		msg.RestaurantID = order.RestaurantID
		msg.CreatorID = order.CreatorID
	}
	s.publish(ctx, msg)
	return entry, nil
}

// GetDishToSideDishesMap is read through the side dish cache.
func (s *OrderEntryService) GetDishToSideDishesMap(ctx context.Context, restaurantID int) (map[int][]domain.SideDish, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.GetSideDishMap(ctx, restaurantID)
		if err != nil {
			s.logger.Warn("side dish cache read failed", zap.Int("restaurant_id", restaurantID), zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	dishes, err := s.dishes.ListDishes(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}

	result := make(map[int][]domain.SideDish, len(dishes))
	for _, d := range dishes {
		sideDishes := d.SideDishes
		if sideDishes == nil {
			sideDishes = []domain.SideDish{}
		}
		result[d.ID] = sideDishes
	}

	if s.cache != nil {
		if err := s.cache.SetSideDishMap(ctx, restaurantID, result); err != nil {
			s.logger.Warn("side dish cache write failed", zap.Int("restaurant_id", restaurantID), zap.Error(err))
		}
	}
	return result, nil
}

func (s *OrderEntryService) Get(orderEntryID int) (*domain.OrderEntry, error) {
	entry, err := s.entries.GetOrderEntry(orderEntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order entry: %w", err)
	}
	if entry == nil {
		return nil, domain.ErrOrderEntryNotFound
	}
	return entry, nil
}

func (s *OrderEntryService) invalidate(ctx context.Context, restaurantID int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, restaurantID); err != nil {
		s.logger.Warn("side dish cache invalidation failed", zap.Int("restaurant_id", restaurantID), zap.Error(err))
	}
}

// eventOrder loads the order only to fill in event fields; a failed lookup is
// logged and the event goes out without them.
func (s *OrderEntryService) eventOrder(orderID int) *domain.Order {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		s.logger.Warn("failed to load order for event", zap.Int("order_id", orderID), zap.Error(err))
		return nil
	}
	return order
}

func (s *OrderEntryService) publish(ctx context.Context, msg domain.KafkaMessage) {
	publishEvent(ctx, s.publisher, s.logger, msg)
}

func publishEvent(ctx context.Context, publisher EventPublisher, logger *zap.Logger, msg domain.KafkaMessage) {
	if publisher == nil {
		return
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	if err := publisher.Publish(ctx, msg); err != nil {
		logger.Warn("failed to publish event",
			zap.String("type", msg.Type),
			zap.Int("order_id", msg.OrderID),
			zap.Error(err))
	}
}

// dishReference drops the side dish list; a dish entry only refers to its
// dish.
func dishReference(d *domain.Dish) domain.Dish {
	ref := *d
	ref.SideDishes = nil
	return ref
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
