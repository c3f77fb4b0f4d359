package tests

import (
	"context"
	"sort"
	"sync"
	"time"

	"team-lunch/order-svc/internal/domain"
	"team-lunch/order-svc/internal/service"
)

// memStore is an in-memory repository used by the acceptance scenarios.
type memStore struct {
	mu          sync.Mutex
	restaurants map[int]domain.Restaurant
	dishes      map[int]domain.Dish
	orders      map[int]domain.Order
	entries     map[int]domain.OrderEntry
	nextID      int
}

var (
	_ service.RestaurantRepository = (*memStore)(nil)
	_ service.DishRepository       = (*memStore)(nil)
	_ service.OrderRepository      = (*memStore)(nil)
	_ service.OrderEntryRepository = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		restaurants: make(map[int]domain.Restaurant),
		dishes:      make(map[int]domain.Dish),
		orders:      make(map[int]domain.Order),
		entries:     make(map[int]domain.OrderEntry),
		nextID:      100,
	}
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

func copyEntry(e domain.OrderEntry) domain.OrderEntry {
	e.DishEntries = append([]domain.DishEntry(nil), e.DishEntries...)
	return e
}

func copyDish(d domain.Dish) domain.Dish {
	d.SideDishes = append([]domain.SideDish(nil), d.SideDishes...)
	return d
}

func (s *memStore) CreateRestaurant(rest *domain.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rest.ID == 0 {
		rest.ID = s.id()
	}
	s.restaurants[rest.ID] = *rest
	return nil
}

func (s *memStore) ListRestaurants(teamID int) ([]domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Restaurant
	for _, r := range s.restaurants {
		if r.TeamID == teamID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore) GetRestaurant(id int) (*domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.restaurants[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *memStore) UpdateRestaurant(rest *domain.Restaurant) error {
	return s.CreateRestaurant(rest)
}

func (s *memStore) DeleteRestaurant(id int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.restaurants[id]; !ok {
		return 0, nil
	}
	delete(s.restaurants, id)
	return 1, nil
}

func (s *memStore) CountDishesByRestaurant(teamID int) (map[int]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[int]int)
	for _, d := range s.dishes {
		if s.restaurants[d.RestaurantID].TeamID == teamID {
			counts[d.RestaurantID]++
		}
	}
	return counts, nil
}

func (s *memStore) CreateDish(dish *domain.Dish) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dish.ID == 0 {
		dish.ID = s.id()
	}
	s.dishes[dish.ID] = copyDish(*dish)
	return nil
}

func (s *memStore) GetDish(id int) (*domain.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.dishes[id]
	if !ok {
		return nil, nil
	}
	d = copyDish(d)
	return &d, nil
}

func (s *memStore) ListDishes(restaurantID int) ([]domain.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Dish
	for _, d := range s.dishes {
		if d.RestaurantID == restaurantID {
			out = append(out, copyDish(d))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) UpdateDish(dish *domain.Dish) error {
	return s.CreateDish(dish)
}

func (s *memStore) DeleteDish(id int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.dishes[id]; !ok {
		return 0, nil
	}
	delete(s.dishes, id)
	return 1, nil
}

func (s *memStore) AddSideDish(dishID int, sideDish domain.SideDish) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.dishes[dishID]
	d.SideDishes = append(copyDish(d).SideDishes, sideDish)
	s.dishes[dishID] = d
	return nil
}

func (s *memStore) CountDishEntriesForDish(dishID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.entries {
		for _, de := range e.DishEntries {
			if de.Dish.ID == dishID {
				n++
			}
		}
	}
	return n, nil
}

func (s *memStore) CreateOrder(order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID == 0 {
		order.ID = s.id()
	}
	s.orders[order.ID] = *order
	return nil
}

func (s *memStore) GetOrder(id int) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (s *memStore) UpdateOrder(order *domain.Order) error {
	return s.CreateOrder(order)
}

func (s *memStore) UpdateOrderState(id int, state domain.OrderState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.orders[id]
	o.State = state
	s.orders[id] = o
	return nil
}

func (s *memStore) DeleteOrder(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, id)
	return nil
}

func (s *memStore) ListOrdersByDate(teamID int, date time.Time) ([]domain.Order, error) {
	orders, _ := s.ListOrders(teamID)
	var out []domain.Order
	for _, o := range orders {
		if o.OrderDate.Equal(date) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *memStore) ListOrders(teamID int) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Order
	for _, o := range s.orders {
		if s.restaurants[o.RestaurantID].TeamID == teamID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *memStore) GetOrderEntry(id int) (*domain.OrderEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	e = copyEntry(e)
	return &e, nil
}

func (s *memStore) FindByOrderAndUser(orderID, userID int) (*domain.OrderEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.OrderID == orderID && e.UserID == userID {
			e = copyEntry(e)
			return &e, nil
		}
	}
	return nil, nil
}

func (s *memStore) ListByOrder(orderID int) ([]domain.OrderEntry, error) {
	return s.filterEntries(func(e domain.OrderEntry) bool { return e.OrderID == orderID }), nil
}

func (s *memStore) ListByUser(userID int) ([]domain.OrderEntry, error) {
	return s.filterEntries(func(e domain.OrderEntry) bool { return e.UserID == userID }), nil
}

func (s *memStore) filterEntries(keep func(domain.OrderEntry) bool) []domain.OrderEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.OrderEntry
	for _, e := range s.entries {
		if keep(e) {
			out = append(out, copyEntry(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) SaveOrderEntry(entry *domain.OrderEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == 0 {
		entry.ID = s.id()
	}
	s.entries[entry.ID] = copyEntry(*entry)
	return nil
}

func (s *memStore) DeleteOrderEntry(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

type recordingPublisher struct {
	mu       sync.Mutex
	messages []domain.KafkaMessage
}

func (p *recordingPublisher) Publish(ctx context.Context, msg domain.KafkaMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}
