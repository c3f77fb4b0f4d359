package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"team-lunch/order-svc/internal/domain"
)

type OrderService struct {
	orders      OrderRepository
	entries     OrderEntryRepository
	restaurants RestaurantRepository
	dishes      DishRepository
	sideDishes  SideDishMapper
	qrEncoder   QRGenerator
	publisher   EventPublisher
	formatter   PriceFormatter
	logger      *zap.Logger
	now         func() time.Time
}

func NewOrderService(
	orders OrderRepository,
	entries OrderEntryRepository,
	restaurants RestaurantRepository,
	dishes DishRepository,
	sideDishes SideDishMapper,
	qr QRGenerator,
	publisher EventPublisher,
	formatter PriceFormatter,
	logger *zap.Logger,
) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		orders:      orders,
		entries:     entries,
		restaurants: restaurants,
		dishes:      dishes,
		sideDishes:  sideDishes,
		qrEncoder:   qr,
		publisher:   publisher,
		formatter:   formatter,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock replaces the clock used for "today".
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

func (s *OrderService) Create(ctx context.Context, user *domain.User, req *domain.OrderSaveRequest) (*domain.Order, error) {
	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}

	restaurant, err := s.restaurants.GetRestaurant(req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, domain.ErrRestaurantNotFound
	}
	if restaurant.TeamID != user.TeamID {
		return nil, domain.ErrNoAccessToRestaurant
	}

	order := &domain.Order{
		RestaurantID: restaurant.ID,
		CreatorID:    user.ID,
		OrderDate:    truncateDay(s.now()),
		State:        domain.OrderStateCreated,
	}
	if req.OrderDate != nil {
		order.OrderDate = truncateDay(*req.OrderDate)
	}
	applyOrderRequest(order, req)

	if err := s.orders.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	s.logger.Info("order created",
		zap.Int("order_id", order.ID),
		zap.Int("restaurant_id", order.RestaurantID),
		zap.Int("creator_id", user.ID))
	return order, nil
}

func (s *OrderService) Update(ctx context.Context, user *domain.User, orderID int, req *domain.OrderSaveRequest) (*domain.Order, error) {
	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}

	order, err := s.creatorOrder(user, orderID)
	if err != nil {
		return nil, err
	}

	if req.OrderDate != nil {
		order.OrderDate = truncateDay(*req.OrderDate)
	}
	applyOrderRequest(order, req)

	if err := s.orders.UpdateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, user *domain.User, orderID int) error {
	order, err := s.creatorOrder(user, orderID)
	if err != nil {
		return err
	}
	if err := s.orders.DeleteOrder(order.ID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	s.logger.Info("order deleted", zap.Int("order_id", order.ID), zap.Int("user_id", user.ID))
	return nil
}

func (s *OrderService) Get(user *domain.User, orderID int) (*domain.Order, error) {
	return s.teamOrder(user, orderID)
}

func (s *OrderService) SetState(ctx context.Context, user *domain.User, orderID int, state domain.OrderState) (*domain.Order, error) {
	if !state.Valid() {
		return nil, domain.ErrOrderStateInvalid
	}

	order, err := s.creatorOrder(user, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.changeState(ctx, user, order, state); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) changeState(ctx context.Context, user *domain.User, order *domain.Order, state domain.OrderState) error {
	if err := s.orders.UpdateOrderState(order.ID, state); err != nil {
		return fmt.Errorf("failed to update order state: %w", err)
	}
	order.State = state

	msg := domain.KafkaMessage{
		Type:         domain.EventOrderStateChanged,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		ActorID:      user.ID,
		CreatorID:    order.CreatorID,
		OrderState:   state,
	}
	entries, err := s.entries.ListByOrder(order.ID)
	if err != nil {
		s.logger.Warn("failed to list participants", zap.Int("order_id", order.ID), zap.Error(err))
	}
	for _, e := range entries {
		msg.Participants = append(msg.Participants, e.UserID)
	}
	publishEvent(ctx, s.publisher, s.logger, msg)
	return nil
}

// Index lists the team's orders for today and the caller's entries on them.
func (s *OrderService) Index(user *domain.User) (*domain.OrdersIndexResponse, error) {
	orders, err := s.orders.ListOrdersByDate(user.TeamID, truncateDay(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	entries, err := s.entries.ListByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order entries: %w", err)
	}

	today := make(map[int]struct{}, len(orders))
	for _, o := range orders {
		today[o.ID] = struct{}{}
	}
	current := make([]domain.OrderEntry, 0)
	for _, e := range entries {
		if _, ok := today[e.OrderID]; ok {
			current = append(current, e)
		}
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	return &domain.OrdersIndexResponse{TodaysOrders: orders, UsersOrderEntries: current}, nil
}

func (s *OrderService) All(user *domain.User) ([]domain.Order, error) {
	orders, err := s.orders.ListOrders(user.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *OrderService) Show(ctx context.Context, user *domain.User, orderID int) (*domain.ShowOrderResponse, error) {
	order, err := s.teamOrder(user, orderID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListByOrder(order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order entries: %w", err)
	}

	dishes, err := s.dishes.ListDishes(order.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}

	var sideDishMap map[int][]domain.SideDish
	if s.sideDishes != nil {
		sideDishMap, err = s.sideDishes.GetDishToSideDishesMap(ctx, order.RestaurantID)
		if err != nil {
			return nil, err
		}
	}

	return BuildShowOrder(order, entries, user.ID, dishes, sideDishMap, s.formatter), nil
}

// OrderView is the creator's summary used while placing the order with the
// restaurant. The creator opening it on a CREATED order moves the order to
// ORDERING; other team members only read it.
func (s *OrderService) OrderView(ctx context.Context, user *domain.User, orderID int) (*domain.OrderViewResponse, error) {
	order, err := s.teamOrder(user, orderID)
	if err != nil {
		return nil, err
	}

	if order.State == domain.OrderStateCreated && order.CreatorID == user.ID {
		if err := s.changeState(ctx, user, order, domain.OrderStateOrdering); err != nil {
			return nil, err
		}
	}

	entries, err := s.entries.ListByOrder(order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order entries: %w", err)
	}
	return BuildOrderView(order, entries, s.formatter), nil
}

// PaymentQR renders a bank transfer QR code for the entry's final price.
func (s *OrderService) PaymentQR(user *domain.User, orderEntryID int) ([]byte, error) {
	entry, err := s.entries.GetOrderEntry(orderEntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order entry: %w", err)
	}
	if entry == nil {
		return nil, domain.ErrOrderEntryNotFound
	}

	order, err := s.teamOrder(user, entry.OrderID)
	if err != nil {
		return nil, err
	}
	if !order.PaymentByBankTransfer || strings.TrimSpace(order.BankTransferNumber) == "" {
		return nil, domain.ErrBankTransferDisabled
	}

	entries, err := s.entries.ListByOrder(order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order entries: %w", err)
	}
	price := EntryPrice(order, entry, ParticipantsCount(entries))

	title := fmt.Sprintf("Order %d %s", order.ID, order.OrderDate.Format("2006-01-02"))
	qr, err := s.qrEncoder.Generate(PaymentTransfer{
		AccountNumber: order.BankTransferNumber,
		Amount:        price.Final,
		Title:         title,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}
	return qr, nil
}

func (s *OrderService) teamOrder(user *domain.User, orderID int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(orderID)
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
	return order, nil
}

func (s *OrderService) creatorOrder(user *domain.User, orderID int) (*domain.Order, error) {
	order, err := s.teamOrder(user, orderID)
	if err != nil {
		return nil, err
	}
	if order.CreatorID != user.ID {
		return nil, domain.ErrNotOrderCreator
	}
	return order, nil
}

func validateOrderRequest(req *domain.OrderSaveRequest) error {
	d := req.DeliveryData
	if d.DecreaseInPercent < 0 || d.DecreaseInPercent > 100 ||
		d.DeliveryCostPerEverybody < 0 || d.DeliveryCostPerDish < 0 {
		return domain.ErrOrderCostInvalid
	}
	if req.PaymentData.PaymentByBankTransfer && isBlank(req.PaymentData.BankTransferNumber) {
		return domain.ErrBankTransferNumberBlank
	}
	return nil
}

func applyOrderRequest(order *domain.Order, req *domain.OrderSaveRequest) {
	order.TimeOfOrder = strings.TrimSpace(req.TimeOfOrder)
	order.DecreaseInPercent = req.DeliveryData.DecreaseInPercent
	order.DeliveryCostPerEverybody = req.DeliveryData.DeliveryCostPerEverybody
	order.DeliveryCostPerDish = req.DeliveryData.DeliveryCostPerDish
	order.PaymentByCash = req.PaymentData.PaymentByCash
	order.PaymentByBankTransfer = req.PaymentData.PaymentByBankTransfer
	order.BankTransferNumber = strings.TrimSpace(req.PaymentData.BankTransferNumber)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
