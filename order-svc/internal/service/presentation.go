package service

import (
	"sort"

	"team-lunch/order-svc/internal/domain"
)

// PriceBreakdown is one participant's share of an order.
type PriceBreakdown struct {
	Base             int
	Decrease         int
	DeliveryPerEntry int
	DeliveryPerDish  int
	Final            int
}

// ParticipantsCount counts distinct users having an entry on the order.
func ParticipantsCount(entries []domain.OrderEntry) int {
	users := make(map[int]struct{}, len(entries))
	for _, e := range entries {
		users[e.UserID] = struct{}{}
	}
	return len(users)
}

func EntryPrice(order *domain.Order, entry *domain.OrderEntry, participants int) PriceBreakdown {
	var p PriceBreakdown
	for _, de := range entry.DishEntries {
		p.Base += de.PriceWithSideDishes()
	}

	p.Decrease = p.Base * order.DecreaseInPercent / 100
	// Nobody to split the flat delivery cost with.
	if participants > 0 {
		p.DeliveryPerEntry = order.DeliveryCostPerEverybody / participants
	}
	p.DeliveryPerDish = order.DeliveryCostPerDish * len(entry.DishEntries)
	p.Final = p.Base - p.Decrease + p.DeliveryPerEntry + p.DeliveryPerDish
	return p
}

func TotalOrderPrice(order *domain.Order, entries []domain.OrderEntry) int {
	participants := ParticipantsCount(entries)
	total := 0
	for i := range entries {
		total += EntryPrice(order, &entries[i], participants).Final
	}
	return total
}

// GroupDishesByCategory sorts each category's dishes by name.
func GroupDishesByCategory(dishes []domain.Dish) map[string][]domain.Dish {
	grouped := make(map[string][]domain.Dish)
	for _, d := range dishes {
		grouped[d.Category] = append(grouped[d.Category], d)
	}
	for _, list := range grouped {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}
	return grouped
}

func BuildShowOrder(
	order *domain.Order,
	entries []domain.OrderEntry,
	currentUserID int,
	dishes []domain.Dish,
	sideDishMap map[int][]domain.SideDish,
	f PriceFormatter,
) *domain.ShowOrderResponse {
	participants := buildParticipants(order, entries, f)
	total := TotalOrderPrice(order, entries)

	if dishes == nil {
		dishes = []domain.Dish{}
	}
	if sideDishMap == nil {
		sideDishMap = map[int][]domain.SideDish{}
	}

	return &domain.ShowOrderResponse{
		Order:                    *order,
		OrderEntries:             participants,
		CurrentUserID:            currentUserID,
		AllDishesInRestaurant:    dishes,
		AllDishesByCategory:      GroupDishesByCategory(dishes),
		DishIDToSideDishesMap:    sideDishMap,
		TotalOrderPrice:          total,
		TotalOrderPriceFormatted: formatPrice(f, total),
	}
}

func BuildOrderView(order *domain.Order, entries []domain.OrderEntry, f PriceFormatter) *domain.OrderViewResponse {
	participants := buildParticipants(order, entries, f)
	total := TotalOrderPrice(order, entries)
	return &domain.OrderViewResponse{
		Order:           *order,
		OrderEntries:    participants,
		TotalOrderPrice: total,
	}
}

func buildParticipants(order *domain.Order, entries []domain.OrderEntry, f PriceFormatter) []domain.ParticipantsOrderEntry {
	participants := ParticipantsCount(entries)
	result := make([]domain.ParticipantsOrderEntry, 0, len(entries))

	for i := range entries {
		entry := &entries[i]
		price := EntryPrice(order, entry, participants)

		dishEntries := make([]domain.ParticipantsDishEntry, 0, len(entry.DishEntries))
		for _, de := range entry.DishEntries {
			dishEntries = append(dishEntries, domain.ParticipantsDishEntry{
				ID:             de.ID,
				Dish:           de.Dish,
				SideDishes:     de.ChosenSideDishes,
				Price:          de.Dish.Price,
				PriceFormatted: formatPrice(f, de.Dish.Price),
				Comments:       de.AdditionalComments,
			})
		}

		result = append(result, domain.ParticipantsOrderEntry{
			ID:                  entry.ID,
			UserID:              entry.UserID,
			DishEntries:         dishEntries,
			BasePrice:           price.Base,
			DecreaseAmount:      price.Decrease,
			DeliveryPerEntry:    price.DeliveryPerEntry,
			DeliveryPerDish:     price.DeliveryPerDish,
			FinalPrice:          price.Final,
			FinalPriceFormatted: formatPrice(f, price.Final),
			PaymentStatus:       entry.PaymentStatus,
		})
	}
	return result
}
