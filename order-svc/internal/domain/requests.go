package domain

import "time"

// SideDishData selects an existing side dish by ID or, with IsNew, asks for
// one to be created on the chosen dish.
type SideDishData struct {
	ID               string `json:"id"`
	IsNew            bool   `json:"isNew"`
	NewSideDishName  string `json:"newSideDishName"`
	NewSideDishPrice *int   `json:"newSideDishPrice"`
}

type OrderEntrySaveRequest struct {
	OrderID            int            `json:"orderId"`
	DishID             int            `json:"dishId"`
	NewDish            bool           `json:"newDish"`
	NewDishName        string         `json:"newDishName"`
	NewDishPrice       *int           `json:"newDishPrice"`
	AdditionalComments string         `json:"additionalComments"`
	SideDishes         []SideDishData `json:"sideDishes"`
}

type OrderEntryUpdateRequest struct {
	ID                 int            `json:"id"`
	OrderID            int            `json:"orderId"`
	DishEntryID        string         `json:"dishEntryId"`
	DishID             int            `json:"dishId"`
	NewDish            bool           `json:"newDish"`
	NewDishName        string         `json:"newDishName"`
	NewDishPrice       *int           `json:"newDishPrice"`
	AdditionalComments string         `json:"additionalComments"`
	SideDishes         []SideDishData `json:"sideDishes"`
}

type RestaurantSaveRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Telephone string `json:"telephone"`
	URL       string `json:"url"`
}

type DishSaveRequest struct {
	Name       string     `json:"name"`
	Price      int        `json:"price"`
	Category   string     `json:"category"`
	SideDishes []SideDish `json:"sideDishes"`
}

type DeliveryData struct {
	DecreaseInPercent        int `json:"decreaseInPercent"`
	DeliveryCostPerEverybody int `json:"deliveryCostPerEverybody"`
	DeliveryCostPerDish      int `json:"deliveryCostPerDish"`
}

type PaymentData struct {
	PaymentByCash         bool   `json:"paymentByCash"`
	PaymentByBankTransfer bool   `json:"paymentByBankTransfer"`
	BankTransferNumber    string `json:"bankTransferNumber"`
}

type OrderSaveRequest struct {
	RestaurantID int          `json:"restaurantId"`
	OrderDate    *time.Time   `json:"orderDate"`
	TimeOfOrder  string       `json:"timeOfOrder"`
	DeliveryData DeliveryData `json:"deliveryData"`
	PaymentData  PaymentData  `json:"paymentData"`
}
