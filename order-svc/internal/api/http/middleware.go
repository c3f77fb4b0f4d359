package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"team-lunch/order-svc/internal/domain"
)

const UserHeader = "X-User-ID"

type ctxKey int

const userKey ctxKey = iota

// UserFromContext returns the caller resolved by the identity middleware.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok && user != nil
}

func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// identify resolves the X-User-ID header to a user. Requests without a known
// user never reach the handlers.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.Header.Get(UserHeader))
		if err != nil || id <= 0 {
			writeMessage(w, http.StatusUnauthorized, "missing or invalid "+UserHeader+" header")
			return
		}

		user, err := h.Users.GetUser(id)
		if err != nil {
			h.Logger.Error("failed to load user", zap.Int("user_id", id), zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "internal error")
			return
		}
		if user == nil {
			writeMessage(w, http.StatusUnauthorized, "unknown user")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}
