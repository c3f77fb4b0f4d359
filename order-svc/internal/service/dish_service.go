package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"team-lunch/order-svc/internal/domain"
)

type DishService struct {
	repo        DishRepository
	restaurants RestaurantRepository
	cache       SideDishCache
	logger      *zap.Logger
	newID       func() string
}

func NewDishService(repo DishRepository, restaurants RestaurantRepository, cache SideDishCache, logger *zap.Logger) *DishService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DishService{
		repo:        repo,
		restaurants: restaurants,
		cache:       cache,
		logger:      logger,
		newID:       func() string { return uuid.NewString() },
	}
}

func (s *DishService) Create(ctx context.Context, user *domain.User, restaurantID int, req *domain.DishSaveRequest) (*domain.Dish, error) {
	rest, err := teamRestaurant(s.restaurants, user, restaurantID)
	if err != nil {
		return nil, err
	}
	sideDishes, err := s.validateDishRequest(req)
	if err != nil {
		return nil, err
	}

	dish := &domain.Dish{
		RestaurantID: rest.ID,
		Name:         strings.TrimSpace(req.Name),
		Price:        req.Price,
		Category:     strings.TrimSpace(req.Category),
		SideDishes:   sideDishes,
	}
	if err := s.repo.CreateDish(dish); err != nil {
		return nil, fmt.Errorf("failed to create dish: %w", err)
	}
	s.invalidate(ctx, rest.ID)
	return dish, nil
}

func (s *DishService) Get(user *domain.User, restaurantID, dishID int) (*domain.Dish, error) {
	if _, err := teamRestaurant(s.restaurants, user, restaurantID); err != nil {
		return nil, err
	}
	return s.restaurantDish(restaurantID, dishID)
}

func (s *DishService) List(user *domain.User, restaurantID int) ([]domain.Dish, error) {
	if _, err := teamRestaurant(s.restaurants, user, restaurantID); err != nil {
		return nil, err
	}
	dishes, err := s.repo.ListDishes(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}
	if dishes == nil {
		dishes = []domain.Dish{}
	}
	return dishes, nil
}

// Update replaces name, price, category and the side dish list. Side dishes
// sent without an id are new.
func (s *DishService) Update(ctx context.Context, user *domain.User, restaurantID, dishID int, req *domain.DishSaveRequest) (*domain.Dish, error) {
	if _, err := teamRestaurant(s.restaurants, user, restaurantID); err != nil {
		return nil, err
	}
	dish, err := s.restaurantDish(restaurantID, dishID)
	if err != nil {
		return nil, err
	}
	sideDishes, err := s.validateDishRequest(req)
	if err != nil {
		return nil, err
	}

	dish.Name = strings.TrimSpace(req.Name)
	dish.Price = req.Price
	dish.Category = strings.TrimSpace(req.Category)
	dish.SideDishes = sideDishes

	if err := s.repo.UpdateDish(dish); err != nil {
		return nil, fmt.Errorf("failed to update dish: %w", err)
	}
	s.invalidate(ctx, restaurantID)
	return dish, nil
}

func (s *DishService) Delete(ctx context.Context, user *domain.User, restaurantID, dishID int) error {
	if _, err := teamRestaurant(s.restaurants, user, restaurantID); err != nil {
		return err
	}
	dish, err := s.restaurantDish(restaurantID, dishID)
	if err != nil {
		return err
	}

	used, err := s.repo.CountDishEntriesForDish(dish.ID)
	if err != nil {
		return fmt.Errorf("failed to count dish entries: %w", err)
	}
	if used > 0 {
		return domain.ErrDishInUse
	}

	affected, err := s.repo.DeleteDish(dish.ID)
	if err != nil {
		return fmt.Errorf("failed to delete dish: %w", err)
	}
	if affected == 0 {
		return domain.ErrDishNotFound
	}
	s.invalidate(ctx, restaurantID)
	return nil
}

func (s *DishService) restaurantDish(restaurantID, dishID int) (*domain.Dish, error) {
	dish, err := s.repo.GetDish(dishID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dish: %w", err)
	}
	if dish == nil || dish.RestaurantID != restaurantID {
		return nil, domain.ErrDishNotFound
	}
	return dish, nil
}

func (s *DishService) validateDishRequest(req *domain.DishSaveRequest) ([]domain.SideDish, error) {
	if isBlank(req.Name) {
		return nil, domain.ErrDishNameBlank
	}
	if req.Price < 0 {
		return nil, domain.ErrDishPriceInvalid
	}

	sideDishes := make([]domain.SideDish, 0, len(req.SideDishes))
	for _, sd := range req.SideDishes {
		if isBlank(sd.Name) {
			return nil, domain.ErrSideDishNameBlank
		}
		if sd.Price < 0 {
			return nil, domain.ErrSideDishPriceInvalid
		}
		if sd.ID == "" {
			sd.ID = s.newID()
		}
		sd.Name = strings.TrimSpace(sd.Name)
		sideDishes = append(sideDishes, sd)
	}
	return sideDishes, nil
}

func (s *DishService) invalidate(ctx context.Context, restaurantID int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, restaurantID); err != nil {
		s.logger.Warn("side dish cache invalidation failed", zap.Int("restaurant_id", restaurantID), zap.Error(err))
	}
}
