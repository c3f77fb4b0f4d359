package service

import (
	"context"
	"time"

	"team-lunch/order-svc/internal/domain"
	"team-lunch/order-svc/internal/storage"
)

// Repository lookups return (nil, nil) when the row does not exist; the
// services turn that into the matching domain error.

type UserRepository interface {
	GetUser(id int) (*domain.User, error)
}

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants(teamID int) ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	DeleteRestaurant(id int) (int64, error)
	CountDishesByRestaurant(teamID int) (map[int]int, error)
}

type DishRepository interface {
	CreateDish(dish *domain.Dish) error
	GetDish(id int) (*domain.Dish, error)
	ListDishes(restaurantID int) ([]domain.Dish, error)
	UpdateDish(dish *domain.Dish) error
	DeleteDish(id int) (int64, error)
	AddSideDish(dishID int, sideDish domain.SideDish) error
	CountDishEntriesForDish(dishID int) (int, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	UpdateOrder(order *domain.Order) error
	UpdateOrderState(id int, state domain.OrderState) error
	DeleteOrder(id int) error
	ListOrdersByDate(teamID int, date time.Time) ([]domain.Order, error)
	ListOrders(teamID int) ([]domain.Order, error)
}

type OrderEntryRepository interface {
	GetOrderEntry(id int) (*domain.OrderEntry, error)
	FindByOrderAndUser(orderID, userID int) (*domain.OrderEntry, error)
	ListByOrder(orderID int) ([]domain.OrderEntry, error)
	ListByUser(userID int) ([]domain.OrderEntry, error)
	SaveOrderEntry(entry *domain.OrderEntry) error
	DeleteOrderEntry(id int) error
}

type SideDishCache interface {
	GetSideDishMap(ctx context.Context, restaurantID int) (map[int][]domain.SideDish, bool, error)
	SetSideDishMap(ctx context.Context, restaurantID int, m map[int][]domain.SideDish) error
	Invalidate(ctx context.Context, restaurantID int) error
}

type EventPublisher interface {
	Publish(ctx context.Context, msg domain.KafkaMessage) error
}

// SideDishMapper yields dish id -> side dishes for a restaurant.
type SideDishMapper interface {
	GetDishToSideDishesMap(ctx context.Context, restaurantID int) (map[int][]domain.SideDish, error)
}

type ActivityReader interface {
	Notifications(ctx context.Context, userID int, limit int) ([]domain.Notification, error)
	PopularDishes(ctx context.Context, restaurantID int, day time.Time, limit int) ([]domain.PopularDish, error)
}

type OrderEntryServiceInterface interface {
	SaveEntry(ctx context.Context, user *domain.User, req *domain.OrderEntrySaveRequest) (*domain.OrderEntry, error)
	UpdateEntry(ctx context.Context, req *domain.OrderEntryUpdateRequest) (*domain.OrderEntry, error)
	DeleteOrderEntry(ctx context.Context, orderEntryID int, dishEntryID string) error
	SetAsMarkedAsPaid(ctx context.Context, orderEntryID int) (*domain.OrderEntry, error)
	SetAsConfirmedAsPaid(ctx context.Context, orderEntryID int) (*domain.OrderEntry, error)
	GetDishToSideDishesMap(ctx context.Context, restaurantID int) (map[int][]domain.SideDish, error)
	Get(orderEntryID int) (*domain.OrderEntry, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, user *domain.User, req *domain.OrderSaveRequest) (*domain.Order, error)
	Update(ctx context.Context, user *domain.User, orderID int, req *domain.OrderSaveRequest) (*domain.Order, error)
	Delete(ctx context.Context, user *domain.User, orderID int) error
	Get(user *domain.User, orderID int) (*domain.Order, error)
	SetState(ctx context.Context, user *domain.User, orderID int, state domain.OrderState) (*domain.Order, error)
	Index(user *domain.User) (*domain.OrdersIndexResponse, error)
	All(user *domain.User) ([]domain.Order, error)
	Show(ctx context.Context, user *domain.User, orderID int) (*domain.ShowOrderResponse, error)
	OrderView(ctx context.Context, user *domain.User, orderID int) (*domain.OrderViewResponse, error)
	PaymentQR(user *domain.User, orderEntryID int) ([]byte, error)
}

type RestaurantServiceInterface interface {
	Create(user *domain.User, req *domain.RestaurantSaveRequest) (*domain.Restaurant, error)
	List(user *domain.User) ([]domain.RestaurantInfo, error)
	Show(user *domain.User, id int) (*domain.ShowRestaurantResponse, error)
	Update(user *domain.User, id int, req *domain.RestaurantSaveRequest) (*domain.Restaurant, error)
	Delete(ctx context.Context, user *domain.User, id int) error
	PopularDishes(ctx context.Context, user *domain.User, id int) ([]domain.PopularDish, error)
}

type DishServiceInterface interface {
	Create(ctx context.Context, user *domain.User, restaurantID int, req *domain.DishSaveRequest) (*domain.Dish, error)
	Get(user *domain.User, restaurantID, dishID int) (*domain.Dish, error)
	List(user *domain.User, restaurantID int) ([]domain.Dish, error)
	Update(ctx context.Context, user *domain.User, restaurantID, dishID int, req *domain.DishSaveRequest) (*domain.Dish, error)
	Delete(ctx context.Context, user *domain.User, restaurantID, dishID int) error
}

type NotificationServiceInterface interface {
	List(ctx context.Context, user *domain.User) ([]domain.Notification, error)
}

var (
	_ OrderEntryServiceInterface   = (*OrderEntryService)(nil)
	_ OrderServiceInterface        = (*OrderService)(nil)
	_ RestaurantServiceInterface   = (*RestaurantService)(nil)
	_ DishServiceInterface         = (*DishService)(nil)
	_ NotificationServiceInterface = (*NotificationService)(nil)
)

var (
	_ UserRepository       = (*storage.PostgresRepository)(nil)
	_ RestaurantRepository = (*storage.PostgresRepository)(nil)
	_ DishRepository       = (*storage.PostgresRepository)(nil)
	_ OrderRepository      = (*storage.PostgresRepository)(nil)
	_ OrderEntryRepository = (*storage.PostgresRepository)(nil)
	_ SideDishCache        = (*storage.RedisCache)(nil)
	_ ActivityReader       = (*storage.ActivityStore)(nil)
	_ EventPublisher       = (*storage.KafkaPublisher)(nil)
)
