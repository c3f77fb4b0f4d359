package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"team-lunch/order-svc/internal/domain"
	"team-lunch/order-svc/internal/service"
)

var errInvalidID = errors.New("invalid id")

type Handler struct {
	Users         service.UserRepository
	Restaurants   service.RestaurantServiceInterface
	Dishes        service.DishServiceInterface
	Orders        service.OrderServiceInterface
	Entries       service.OrderEntryServiceInterface
	Notifications service.NotificationServiceInterface
	Logger        *zap.Logger
}

func NewHandler(
	users service.UserRepository,
	restSvc service.RestaurantServiceInterface,
	dishSvc service.DishServiceInterface,
	orderSvc service.OrderServiceInterface,
	entrySvc service.OrderEntryServiceInterface,
	notificationSvc service.NotificationServiceInterface,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Users:         users,
		Restaurants:   restSvc,
		Dishes:        dishSvc,
		Orders:        orderSvc,
		Entries:       entrySvc,
		Notifications: notificationSvc,
		Logger:        logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.identify)

	api.HandleFunc("/restaurants", h.createRestaurant).Methods("POST")
	api.HandleFunc("/restaurants", h.getRestaurants).Methods("GET")
	api.HandleFunc("/restaurants/{id}", h.getRestaurant).Methods("GET")
	api.HandleFunc("/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	api.HandleFunc("/restaurants/{id}", h.deleteRestaurant).Methods("DELETE")
	api.HandleFunc("/restaurants/{id}/popular_dishes", h.getPopularDishes).Methods("GET")

	api.HandleFunc("/restaurants/{restaurantId}/dishes", h.createDish).Methods("POST")
	api.HandleFunc("/restaurants/{restaurantId}/dishes", h.getRestaurantDishes).Methods("GET")
	api.HandleFunc("/restaurants/{restaurantId}/dishes/{dishId}", h.getDish).Methods("GET")
	api.HandleFunc("/restaurants/{restaurantId}/dishes/{dishId}", h.updateDish).Methods("PUT")
	api.HandleFunc("/restaurants/{restaurantId}/dishes/{dishId}", h.deleteDish).Methods("DELETE")

	api.HandleFunc("/orders", h.createOrder).Methods("POST")
	api.HandleFunc("/orders", h.getOrders).Methods("GET")
	api.HandleFunc("/orders/all", h.getAllOrders).Methods("GET")
	api.HandleFunc("/orders/{id}", h.showOrder).Methods("GET")
	api.HandleFunc("/orders/{id}", h.updateOrder).Methods("PUT")
	api.HandleFunc("/orders/{id}", h.deleteOrder).Methods("DELETE")
	api.HandleFunc("/orders/{id}/order_view", h.orderView).Methods("GET")
	api.HandleFunc("/orders/{id}/set_as_created", h.setOrderState(domain.OrderStateCreated)).Methods("PUT")
	api.HandleFunc("/orders/{id}/set_as_ordering", h.setOrderState(domain.OrderStateOrdering)).Methods("PUT")
	api.HandleFunc("/orders/{id}/set_as_ordered", h.setOrderState(domain.OrderStateOrdered)).Methods("PUT")
	api.HandleFunc("/orders/{id}/set_as_delivered", h.setOrderState(domain.OrderStateDelivered)).Methods("PUT")
	api.HandleFunc("/orders/{id}/set_as_rejected", h.setOrderState(domain.OrderStateRejected)).Methods("PUT")

	api.HandleFunc("/order_entries", h.saveEntry).Methods("POST")
	api.HandleFunc("/order_entries", h.updateEntry).Methods("PUT")
	api.HandleFunc("/order_entries/{id}/dish_entry/{dishEntryId}", h.deleteDishEntry).Methods("DELETE")
	api.HandleFunc("/order_entries/{id}/mark_as_paid", h.markAsPaid).Methods("PUT")
	api.HandleFunc("/order_entries/{id}/confirm_as_paid", h.confirmAsPaid).Methods("PUT")
	api.HandleFunc("/order_entries/{id}/payment_qr", h.paymentQR).Methods("GET")

	api.HandleFunc("/notifications", h.getNotifications).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

// restaurants

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	var req domain.RestaurantSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	rest, err := h.Restaurants.Create(user, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	restaurants, err := h.Restaurants.List(user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp, err := h.Restaurants.Show(user, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req domain.RestaurantSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	rest, err := h.Restaurants.Update(user, id, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Restaurants.Delete(r.Context(), user, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getPopularDishes(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	popular, err := h.Restaurants.PopularDishes(r.Context(), user, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, popular)
}

// dishes

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	restaurantID, err := pathID(r, "restaurantId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req domain.DishSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	dish, err := h.Dishes.Create(r.Context(), user, restaurantID, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) getRestaurantDishes(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	restaurantID, err := pathID(r, "restaurantId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dishes, err := h.Dishes.List(user, restaurantID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	restaurantID, dishID, err := dishPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dish, err := h.Dishes.Get(user, restaurantID, dishID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	restaurantID, dishID, err := dishPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req domain.DishSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	dish, err := h.Dishes.Update(r.Context(), user, restaurantID, dishID, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	restaurantID, dishID, err := dishPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Dishes.Delete(r.Context(), user, restaurantID, dishID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// orders

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	var req domain.OrderSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	order, err := h.Orders.Create(r.Context(), user, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	resp, err := h.Orders.Index(user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getAllOrders(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	orders, err := h.Orders.All(user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) showOrder(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp, err := h.Orders.Show(r.Context(), user, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req domain.OrderSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	order, err := h.Orders.Update(r.Context(), user, id, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Orders.Delete(r.Context(), user, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) orderView(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp, err := h.Orders.OrderView(r.Context(), user, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) setOrderState(state domain.OrderState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := UserFromContext(r.Context())
		id, err := pathID(r, "id")
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		order, err := h.Orders.SetState(r.Context(), user, id, state)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.Logger.Info("order state changed",
			zap.Int("order_id", order.ID),
			zap.String("state", string(state)),
			zap.Int("user_id", user.ID))
		writeJSON(w, http.StatusOK, order)
	}
}

// order entries

func (h *Handler) saveEntry(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	var req domain.OrderEntrySaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	entry, err := h.Entries.SaveEntry(r.Context(), user, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	var req domain.OrderEntryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if _, err := h.ownedEntry(user, req.ID); err != nil {
		h.writeError(w, r, err)
		return
	}
	entry, err := h.Entries.UpdateEntry(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) deleteDishEntry(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if _, err := h.ownedEntry(user, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Entries.DeleteOrderEntry(r.Context(), id, mux.Vars(r)["dishEntryId"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markAsPaid(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if _, err := h.ownedEntry(user, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	entry, err := h.Entries.SetAsMarkedAsPaid(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) confirmAsPaid(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	existing, err := h.Entries.Get(id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.Orders.Get(user, existing.OrderID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if order.CreatorID != user.ID {
		h.writeError(w, r, domain.ErrNotOrderCreator)
		return
	}
	entry, err := h.Entries.SetAsConfirmedAsPaid(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) paymentQR(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	qr, err := h.Orders.PaymentQR(user, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) getNotifications(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())
	notifications, err := h.Notifications.List(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *Handler) ownedEntry(user *domain.User, orderEntryID int) (*domain.OrderEntry, error) {
	entry, err := h.Entries.Get(orderEntryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != user.ID {
		return nil, domain.ErrNotOrderEntryOwner
	}
	return entry, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errInvalidID):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case domain.IsDomainError(err):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		h.Logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func pathID(r *http.Request, key string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[key])
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func dishPath(r *http.Request) (int, int, error) {
	restaurantID, err := pathID(r, "restaurantId")
	if err != nil {
		return 0, 0, err
	}
	dishID, err := pathID(r, "dishId")
	if err != nil {
		return 0, 0, err
	}
	return restaurantID, dishID, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
