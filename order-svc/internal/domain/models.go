package domain

import "time"

type OrderState string

const (
	OrderStateCreated   OrderState = "CREATED"
	OrderStateOrdering  OrderState = "ORDERING"
	OrderStateOrdered   OrderState = "ORDERED"
	OrderStateDelivered OrderState = "DELIVERED"
	OrderStateRejected  OrderState = "REJECTED"
)

func (s OrderState) Valid() bool {
	switch s {
	case OrderStateCreated, OrderStateOrdering, OrderStateOrdered, OrderStateDelivered, OrderStateRejected:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusNone      PaymentStatus = "NONE"
	PaymentStatusMarked    PaymentStatus = "MARKED"
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
)

type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	TeamID   int    `json:"teamId"`
}

type Restaurant struct {
	ID        int       `json:"id"`
	TeamID    int       `json:"teamId"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Telephone string    `json:"telephone"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

type SideDish struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type Dish struct {
	ID           int        `json:"id"`
	RestaurantID int        `json:"restaurantId"`
	Name         string     `json:"name"`
	Price        int        `json:"price"`
	SideDishes   []SideDish `json:"sideDishes"`
	Category     string     `json:"category"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// FindSideDish looks a side dish up by id in the dish's current list.
func (d *Dish) FindSideDish(id string) (SideDish, bool) {
	for _, sd := range d.SideDishes {
		if sd.ID == id {
			return sd, true
		}
	}
	return SideDish{}, false
}

type Order struct {
	ID                       int        `json:"id"`
	RestaurantID             int        `json:"restaurantId"`
	CreatorID                int        `json:"orderCreatorId"`
	OrderDate                time.Time  `json:"orderDate"`
	TimeOfOrder              string     `json:"timeOfOrder,omitempty"`
	State                    OrderState `json:"orderState"`
	DecreaseInPercent        int        `json:"decreaseInPercent"`
	DeliveryCostPerEverybody int        `json:"deliveryCostPerEverybody"`
	DeliveryCostPerDish      int        `json:"deliveryCostPerDish"`
	PaymentByCash            bool       `json:"paymentByCash"`
	PaymentByBankTransfer    bool       `json:"paymentByBankTransfer"`
	BankTransferNumber       string     `json:"bankTransferNumber"`
	CreatedAt                time.Time  `json:"createdAt"`
}

type DishEntry struct {
	ID                 string     `json:"id"`
	Dish               Dish       `json:"dish"`
	ChosenSideDishes   []SideDish `json:"chosenSideDishes"`
	AdditionalComments string     `json:"additionalComments"`
}

func (e DishEntry) PriceWithSideDishes() int {
	price := e.Dish.Price
	for _, sd := range e.ChosenSideDishes {
		price += sd.Price
	}
	return price
}

type OrderEntry struct {
	ID            int           `json:"id"`
	OrderID       int           `json:"orderId"`
	UserID        int           `json:"userId"`
	DishEntries   []DishEntry   `json:"dishEntries"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// DishEntryIndex returns the position of the dish entry or -1.
func (e *OrderEntry) DishEntryIndex(dishEntryID string) int {
	for i, de := range e.DishEntries {
		if de.ID == dishEntryID {
			return i
		}
	}
	return -1
}
