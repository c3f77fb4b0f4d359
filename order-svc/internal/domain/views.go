package domain

type ParticipantsDishEntry struct {
	ID             string     `json:"id"`
	Dish           Dish       `json:"dish"`
	SideDishes     []SideDish `json:"sideDishes"`
	Price          int        `json:"price"`
	PriceFormatted string     `json:"priceFormatted"`
	Comments       string     `json:"comments"`
}

type ParticipantsOrderEntry struct {
	ID                  int                     `json:"id"`
	UserID              int                     `json:"userId"`
	DishEntries         []ParticipantsDishEntry `json:"dishEntries"`
	BasePrice           int                     `json:"basePrice"`
	DecreaseAmount      int                     `json:"decreaseAmount"`
	DeliveryPerEntry    int                     `json:"deliveryCostPerEntry"`
	DeliveryPerDish     int                     `json:"deliveryCostPerDishEntries"`
	FinalPrice          int                     `json:"finalPrice"`
	FinalPriceFormatted string                  `json:"finalPriceFormatted"`
	PaymentStatus       PaymentStatus           `json:"paymentStatus"`
}

type ShowOrderResponse struct {
	Order                    Order                    `json:"order"`
	OrderEntries             []ParticipantsOrderEntry `json:"orderEntries"`
	CurrentUserID            int                      `json:"currentUserId"`
	AllDishesInRestaurant    []Dish                   `json:"allDishesInRestaurant"`
	AllDishesByCategory      map[string][]Dish        `json:"allDishesByCategory"`
	DishIDToSideDishesMap    map[int][]SideDish       `json:"dishIdToSideDishesMap"`
	TotalOrderPrice          int                      `json:"totalOrderPrice"`
	TotalOrderPriceFormatted string                   `json:"totalOrderPriceFormatted"`
}

type OrderViewResponse struct {
	Order           Order                    `json:"order"`
	OrderEntries    []ParticipantsOrderEntry `json:"orderEntries"`
	TotalOrderPrice int                      `json:"totalOrderPrice"`
}

type OrdersIndexResponse struct {
	TodaysOrders      []Order      `json:"ordersList"`
	UsersOrderEntries []OrderEntry `json:"currentOrderEntries"`
}

type RestaurantInfo struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	DishCount int    `json:"dishCount"`
}

type ShowRestaurantResponse struct {
	Restaurant       Restaurant        `json:"restaurant"`
	Dishes           []Dish            `json:"dishes"`
	DishesByCategory map[string][]Dish `json:"dishesByCategory"`
}

type PopularDish struct {
	DishID   int     `json:"dishId"`
	DishName string  `json:"dishName"`
	Count    float64 `json:"count"`
}

type Notification struct {
	OrderID   int    `json:"orderId"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}
