package domain

import "errors"

type ErrorFamily string

const (
	FamilyNotFound      ErrorFamily = "not_found"
	FamilyAuthorization ErrorFamily = "authorization"
	FamilyState         ErrorFamily = "state"
	FamilyValidation    ErrorFamily = "validation"
)

// Error is a request rejection. Handlers answer it with its message and a
// 400, everything else is a store failure.
type Error struct {
	Family  ErrorFamily
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(family ErrorFamily, message string) *Error {
	return &Error{Family: family, Message: message}
}

var (
	ErrOrderNotFound      = newError(FamilyNotFound, "Order does not exist")
	ErrDishNotFound       = newError(FamilyNotFound, "Dish does not exist")
	ErrSideDishNotFound   = newError(FamilyNotFound, "Side dish does not exist")
	ErrOrderEntryNotFound = newError(FamilyNotFound, "Order entry does not exist")
	ErrDishEntryNotFound  = newError(FamilyNotFound, "Dish entry does not exist")
	ErrRestaurantNotFound = newError(FamilyNotFound, "Restaurant does not exist")

	ErrNoAccessToOrder      = newError(FamilyAuthorization, "You have no access to this order")
	ErrNoAccessToRestaurant = newError(FamilyAuthorization, "You have no access to this restaurant")
	ErrNotOrderEntryOwner   = newError(FamilyAuthorization, "You can edit only your own order entries")
	ErrNotOrderCreator      = newError(FamilyAuthorization, "Only the order creator can do this")

	ErrOrderLocked = newError(FamilyState, "Order is locked")
	ErrDishInUse   = newError(FamilyState, "Dish is in use in existing orders")

	ErrDishNameBlank           = newError(FamilyValidation, "Dish name cannot be blank")
	ErrDishPriceInvalid        = newError(FamilyValidation, "Dish price cannot be blank or negative")
	ErrSideDishNameBlank       = newError(FamilyValidation, "Side dish name cannot be blank")
	ErrSideDishPriceInvalid    = newError(FamilyValidation, "Side dish price cannot be blank or negative")
	ErrRestaurantNameBlank     = newError(FamilyValidation, "Restaurant name cannot be blank")
	ErrOrderCostInvalid        = newError(FamilyValidation, "Discount must be between 0 and 100 and delivery costs cannot be negative")
	ErrBankTransferNumberBlank = newError(FamilyValidation, "Bank transfer number cannot be blank")
	ErrBankTransferDisabled    = newError(FamilyValidation, "Order does not accept bank transfers")
	ErrOrderStateInvalid       = newError(FamilyValidation, "Unknown order state")
)

func IsDomainError(err error) bool {
	var de *Error
	return errors.As(err, &de)
}

func FamilyOf(err error) ErrorFamily {
	var de *Error
	if errors.As(err, &de) {
		return de.Family
	}
	return ""
}
