package tests

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"team-lunch/order-svc/internal/domain"
	"team-lunch/order-svc/internal/service"
)

var errorsByName = map[string]error{
	"OrderNotFound":        domain.ErrOrderNotFound,
	"NoAccessToOrder":      domain.ErrNoAccessToOrder,
	"OrderLocked":          domain.ErrOrderLocked,
	"DishNotFound":         domain.ErrDishNotFound,
	"SideDishNotFound":     domain.ErrSideDishNotFound,
	"DishNameBlank":        domain.ErrDishNameBlank,
	"DishPriceInvalid":     domain.ErrDishPriceInvalid,
	"SideDishNameBlank":    domain.ErrSideDishNameBlank,
	"SideDishPriceInvalid": domain.ErrSideDishPriceInvalid,
}

type orderEntryTestContext struct {
	store      *memStore
	publisher  *recordingPublisher
	entries    *service.OrderEntryService
	users      map[string]*domain.User
	restaurant *domain.Restaurant
	order      *domain.Order
	err        error
}

func (c *orderEntryTestContext) reset() {
	c.store = newMemStore()
	c.publisher = &recordingPublisher{}
	c.entries = service.NewOrderEntryService(c.store, c.store, c.store, c.store, nil, c.publisher, nil)
	c.users = make(map[string]*domain.User)
	c.restaurant = nil
	c.order = nil
	c.err = nil
}

func (c *orderEntryTestContext) user(name string) (*domain.User, error) {
	u, ok := c.users[name]
	if !ok {
		return nil, fmt.Errorf("unknown user %q", name)
	}
	return u, nil
}

func (c *orderEntryTestContext) dishNamed(name string) (*domain.Dish, error) {
	dishes, _ := c.store.ListDishes(c.restaurant.ID)
	for _, d := range dishes {
		if d.Name == name {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("no dish named %q", name)
}

func (c *orderEntryTestContext) entryOf(name string) (*domain.OrderEntry, error) {
	u, err := c.user(name)
	if err != nil {
		return nil, err
	}
	return c.store.FindByOrderAndUser(c.order.ID, u.ID)
}

// Given steps

func (c *orderEntryTestContext) aRestaurantWithDishPriced(restaurant, dish string, price int) error {
	c.restaurant = &domain.Restaurant{TeamID: teamID, Name: restaurant}
	if err := c.store.CreateRestaurant(c.restaurant); err != nil {
		return err
	}
	return c.store.CreateDish(&domain.Dish{RestaurantID: c.restaurant.ID, Name: dish, Price: price})
}

func (c *orderEntryTestContext) usersAreInTheTeam(first, second string) error {
	c.users[first] = &domain.User{ID: creatorID, Username: first, TeamID: teamID}
	c.users[second] = &domain.User{ID: memberID, Username: second, TeamID: teamID}
	return nil
}

func (c *orderEntryTestContext) userIsInAnotherTeam(name string) error {
	c.users[name] = &domain.User{ID: 300, Username: name, TeamID: teamID + 1}
	return nil
}

func (c *orderEntryTestContext) userOpenedAnOrder(name string) error {
	u, err := c.user(name)
	if err != nil {
		return err
	}
	c.order = &domain.Order{
		RestaurantID: c.restaurant.ID,
		CreatorID:    u.ID,
		OrderDate:    time.Now().Truncate(24 * time.Hour),
		State:        domain.OrderStateCreated,
	}
	return c.store.CreateOrder(c.order)
}

func (c *orderEntryTestContext) theOrderIsInState(state string) error {
	return c.store.UpdateOrderState(c.order.ID, domain.OrderState(state))
}

func (c *orderEntryTestContext) theOrderHasCosts(discount, perEverybody, perDish int) error {
	c.order.DecreaseInPercent = discount
	c.order.DeliveryCostPerEverybody = perEverybody
	c.order.DeliveryCostPerDish = perDish
	return c.store.UpdateOrder(c.order)
}

// When steps

func (c *orderEntryTestContext) save(name string, req *domain.OrderEntrySaveRequest) error {
	u, err := c.user(name)
	if err != nil {
		return err
	}
	req.OrderID = c.order.ID
	_, c.err = c.entries.SaveEntry(context.Background(), u, req)
	return nil
}

func (c *orderEntryTestContext) userAddsDish(name, dish string) error {
	return c.userAddsDishWithComment(name, dish, "")
}

func (c *orderEntryTestContext) userAddsDishWithComment(name, dish, comment string) error {
	d, err := c.dishNamed(dish)
	if err != nil {
		return err
	}
	return c.save(name, &domain.OrderEntrySaveRequest{DishID: d.ID, AdditionalComments: comment})
}

func (c *orderEntryTestContext) userAddsNewDish(name, dish string, price int) error {
	return c.save(name, &domain.OrderEntrySaveRequest{NewDish: true, NewDishName: dish, NewDishPrice: &price})
}

func (c *orderEntryTestContext) userAddsDishWithNewSideDish(name, dish, sideDish string, price int) error {
	d, err := c.dishNamed(dish)
	if err != nil {
		return err
	}
	return c.save(name, &domain.OrderEntrySaveRequest{
		DishID:     d.ID,
		SideDishes: []domain.SideDishData{{IsNew: true, NewSideDishName: sideDish, NewSideDishPrice: &price}},
	})
}

func (c *orderEntryTestContext) userRemovesDishEntry(name string, position int) error {
	entry, err := c.entryOf(name)
	if err != nil {
		return err
	}
	if entry == nil || position < 1 || position > len(entry.DishEntries) {
		return fmt.Errorf("%q has no dish entry %d", name, position)
	}
	c.err = c.entries.DeleteOrderEntry(context.Background(), entry.ID, entry.DishEntries[position-1].ID)
	return c.err
}

func (c *orderEntryTestContext) thePaymentIsConfirmed(name string) error {
	entry, err := c.entryOf(name)
	if err != nil || entry == nil {
		return fmt.Errorf("no order entry for %q", name)
	}
	_, c.err = c.entries.SetAsConfirmedAsPaid(context.Background(), entry.ID)
	return c.err
}

func (c *orderEntryTestContext) userMarksThePaymentAsPaid(name string) error {
	entry, err := c.entryOf(name)
	if err != nil || entry == nil {
		return fmt.Errorf("no order entry for %q", name)
	}
	_, c.err = c.entries.SetAsMarkedAsPaid(context.Background(), entry.ID)
	return c.err
}

// Then steps

func (c *orderEntryTestContext) theSaveSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success, got %v", c.err)
	}
	return nil
}

func (c *orderEntryTestContext) theSaveFailsWith(name string) error {
	expected, ok := errorsByName[name]
	if !ok {
		return fmt.Errorf("unknown error %q", name)
	}
	if c.err == nil {
		return errors.New("expected save to fail but it succeeded")
	}
	if !errors.Is(c.err, expected) {
		return fmt.Errorf("expected %s, got %v", name, c.err)
	}
	return nil
}

func (c *orderEntryTestContext) userHasDishEntries(name string, count int) error {
	entry, err := c.entryOf(name)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("%q has no order entry", name)
	}
	if len(entry.DishEntries) != count {
		return fmt.Errorf("expected %d dish entries, got %d", count, len(entry.DishEntries))
	}
	return nil
}

func (c *orderEntryTestContext) dishEntryHasComment(position int, name, comment string) error {
	entry, err := c.entryOf(name)
	if err != nil {
		return err
	}
	if entry == nil || position < 1 || position > len(entry.DishEntries) {
		return fmt.Errorf("%q has no dish entry %d", name, position)
	}
	if got := entry.DishEntries[position-1].AdditionalComments; got != comment {
		return fmt.Errorf("expected comment %q, got %q", comment, got)
	}
	return nil
}

func (c *orderEntryTestContext) userHasNoOrderEntry(name string) error {
	entry, err := c.entryOf(name)
	if err != nil {
		return err
	}
	if entry != nil {
		return fmt.Errorf("expected no order entry, got one with %d dish entries", len(entry.DishEntries))
	}
	return nil
}

func (c *orderEntryTestContext) theRestaurantHasDishes(count int) error {
	dishes, _ := c.store.ListDishes(c.restaurant.ID)
	if len(dishes) != count {
		return fmt.Errorf("expected %d dishes, got %d", count, len(dishes))
	}
	return nil
}

func (c *orderEntryTestContext) dishHasSideDishes(dish string, count int) error {
	d, err := c.dishNamed(dish)
	if err != nil {
		return err
	}
	if len(d.SideDishes) != count {
		return fmt.Errorf("expected %d side dishes, got %d", count, len(d.SideDishes))
	}
	return nil
}

func (c *orderEntryTestContext) thePaymentStatusIs(name, status string) error {
	entry, err := c.entryOf(name)
	if err != nil || entry == nil {
		return fmt.Errorf("no order entry for %q", name)
	}
	if string(entry.PaymentStatus) != status {
		return fmt.Errorf("expected payment status %s, got %s", status, entry.PaymentStatus)
	}
	return nil
}

func (c *orderEntryTestContext) theFinalPriceIs(name string, price int) error {
	entry, err := c.entryOf(name)
	if err != nil || entry == nil {
		return fmt.Errorf("no order entry for %q", name)
	}
	entries, _ := c.store.ListByOrder(c.order.ID)
	got := service.EntryPrice(c.order, entry, service.ParticipantsCount(entries))
	if got.Final != price {
		return fmt.Errorf("expected final price %d, got %+v", price, got)
	}
	return nil
}

func (c *orderEntryTestContext) theTotalOrderPriceIs(price int) error {
	entries, _ := c.store.ListByOrder(c.order.ID)
	if got := service.TotalOrderPrice(c.order, entries); got != price {
		return fmt.Errorf("expected total %d, got %d", price, got)
	}
	return nil
}

func InitializeOrderEntryScenario(ctx *godog.ScenarioContext) {
	tc := &orderEntryTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a restaurant "([^"]*)" with dish "([^"]*)" priced (\d+)$`, tc.aRestaurantWithDishPriced)
	ctx.Step(`^"([^"]*)" and "([^"]*)" are in the team$`, tc.usersAreInTheTeam)
	ctx.Step(`^"([^"]*)" is in another team$`, tc.userIsInAnotherTeam)
	ctx.Step(`^"([^"]*)" opened an order at the restaurant$`, tc.userOpenedAnOrder)
	ctx.Step(`^the order is in state "([^"]*)"$`, tc.theOrderIsInState)
	ctx.Step(`^the order has a (\d+) percent discount, delivery (\d+) for everybody and (\d+) per dish$`, tc.theOrderHasCosts)

	// When steps
	ctx.Step(`^"([^"]*)" adds "([^"]*)" to the order$`, tc.userAddsDish)
	ctx.Step(`^"([^"]*)" adds "([^"]*)" to the order with comment "([^"]*)"$`, tc.userAddsDishWithComment)
	ctx.Step(`^"([^"]*)" adds a new dish "([^"]*)" priced (-?\d+) to the order$`, tc.userAddsNewDish)
	ctx.Step(`^"([^"]*)" adds "([^"]*)" with a new side dish "([^"]*)" priced (-?\d+) to the order$`, tc.userAddsDishWithNewSideDish)
	ctx.Step(`^"([^"]*)" removes dish entry (\d+)$`, tc.userRemovesDishEntry)
	ctx.Step(`^the payment of "([^"]*)" is confirmed$`, tc.thePaymentIsConfirmed)
	ctx.Step(`^"([^"]*)" marks the payment as paid$`, tc.userMarksThePaymentAsPaid)

	// Then steps
	ctx.Step(`^the save succeeds$`, tc.theSaveSucceeds)
	ctx.Step(`^the save fails with "([^"]*)"$`, tc.theSaveFailsWith)
	ctx.Step(`^"([^"]*)" has (\d+) dish entries on the order$`, tc.userHasDishEntries)
	ctx.Step(`^dish entry (\d+) of "([^"]*)" has comment "([^"]*)"$`, tc.dishEntryHasComment)
	ctx.Step(`^"([^"]*)" has no order entry on the order$`, tc.userHasNoOrderEntry)
	ctx.Step(`^the restaurant has (\d+) dishes$`, tc.theRestaurantHasDishes)
	ctx.Step(`^"([^"]*)" has (\d+) side dishes$`, tc.dishHasSideDishes)
	ctx.Step(`^the payment status of "([^"]*)" is "([^"]*)"$`, tc.thePaymentStatusIs)
	ctx.Step(`^the final price of "([^"]*)" is (\d+)$`, tc.theFinalPriceIs)
	ctx.Step(`^the total order price is (\d+)$`, tc.theTotalOrderPriceIs)
}

func TestOrderEntryFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeOrderEntryScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/order_entry.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
