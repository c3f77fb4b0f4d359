package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"team-lunch/order-svc/internal/domain"
)

const popularDishesLimit = 10

type RestaurantService struct {
	repo     RestaurantRepository
	dishes   DishRepository
	cache    SideDishCache
	activity ActivityReader
	logger   *zap.Logger
	now      func() time.Time
}

func NewRestaurantService(repo RestaurantRepository, dishes DishRepository, cache SideDishCache, activity ActivityReader, logger *zap.Logger) *RestaurantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RestaurantService{
		repo:     repo,
		dishes:   dishes,
		cache:    cache,
		activity: activity,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *RestaurantService) Create(user *domain.User, req *domain.RestaurantSaveRequest) (*domain.Restaurant, error) {
	if isBlank(req.Name) {
		return nil, domain.ErrRestaurantNameBlank
	}
	rest := &domain.Restaurant{TeamID: user.TeamID}
	applyRestaurantRequest(rest, req)

	if err := s.repo.CreateRestaurant(rest); err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}
	return rest, nil
}

func (s *RestaurantService) List(user *domain.User) ([]domain.RestaurantInfo, error) {
	restaurants, err := s.repo.ListRestaurants(user.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	counts, err := s.repo.CountDishesByRestaurant(user.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count dishes: %w", err)
	}

	infos := make([]domain.RestaurantInfo, 0, len(restaurants))
	for _, r := range restaurants {
		infos = append(infos, domain.RestaurantInfo{ID: r.ID, Name: r.Name, DishCount: counts[r.ID]})
	}
	return infos, nil
}

func (s *RestaurantService) Show(user *domain.User, id int) (*domain.ShowRestaurantResponse, error) {
	rest, err := teamRestaurant(s.repo, user, id)
	if err != nil {
		return nil, err
	}
	dishes, err := s.dishes.ListDishes(rest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}
	if dishes == nil {
		dishes = []domain.Dish{}
	}
	return &domain.ShowRestaurantResponse{
		Restaurant:       *rest,
		Dishes:           dishes,
		DishesByCategory: GroupDishesByCategory(dishes),
	}, nil
}

func (s *RestaurantService) Update(user *domain.User, id int, req *domain.RestaurantSaveRequest) (*domain.Restaurant, error) {
	if isBlank(req.Name) {
		return nil, domain.ErrRestaurantNameBlank
	}
	rest, err := teamRestaurant(s.repo, user, id)
	if err != nil {
		return nil, err
	}
	applyRestaurantRequest(rest, req)

	if err := s.repo.UpdateRestaurant(rest); err != nil {
		return nil, fmt.Errorf("failed to update restaurant: %w", err)
	}
	return rest, nil
}

func (s *RestaurantService) Delete(ctx context.Context, user *domain.User, id int) error {
	rest, err := teamRestaurant(s.repo, user, id)
	if err != nil {
		return err
	}
	affected, err := s.repo.DeleteRestaurant(rest.ID)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}
	if affected == 0 {
		return domain.ErrRestaurantNotFound
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, rest.ID); err != nil {
			s.logger.Warn("side dish cache invalidation failed", zap.Int("restaurant_id", rest.ID), zap.Error(err))
		}
	}
	return nil
}

// PopularDishes returns today's most added dishes of the restaurant.
func (s *RestaurantService) PopularDishes(ctx context.Context, user *domain.User, id int) ([]domain.PopularDish, error) {
	rest, err := teamRestaurant(s.repo, user, id)
	if err != nil {
		return nil, err
	}
	if s.activity == nil {
		return []domain.PopularDish{}, nil
	}

	popular, err := s.activity.PopularDishes(ctx, rest.ID, s.now(), popularDishesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to read popular dishes: %w", err)
	}
	if len(popular) == 0 {
		return []domain.PopularDish{}, nil
	}

	dishes, err := s.dishes.ListDishes(rest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}
	names := make(map[int]string, len(dishes))
	for _, d := range dishes {
		names[d.ID] = d.Name
	}

	result := make([]domain.PopularDish, 0, len(popular))
	for _, p := range popular {
		name, ok := names[p.DishID]
		if !ok {
			// deleted since
			continue
		}
		p.DishName = name
		result = append(result, p)
	}
	return result, nil
}

func teamRestaurant(repo RestaurantRepository, user *domain.User, id int) (*domain.Restaurant, error) {
	rest, err := repo.GetRestaurant(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurant: %w", err)
	}
	if rest == nil {
		return nil, domain.ErrRestaurantNotFound
	}
	if rest.TeamID != user.TeamID {
		return nil, domain.ErrNoAccessToRestaurant
	}
	return rest, nil
}

func applyRestaurantRequest(rest *domain.Restaurant, req *domain.RestaurantSaveRequest) {
	rest.Name = strings.TrimSpace(req.Name)
	rest.Address = strings.TrimSpace(req.Address)
	rest.Telephone = strings.TrimSpace(req.Telephone)
	rest.URL = strings.TrimSpace(req.URL)
}
