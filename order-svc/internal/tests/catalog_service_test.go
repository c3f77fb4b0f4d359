package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"team-lunch/order-svc/internal/domain"
	"team-lunch/order-svc/internal/mocks"
	"team-lunch/order-svc/internal/service"
)

func TestRestaurantService_Create(t *testing.T) {
	repository := mocks.NewRestaurantRepository(t)
	svc := service.NewRestaurantService(repository, nil, nil, nil, nil)

	tests := []struct {
		name          string
		req           *domain.RestaurantSaveRequest
		prepareMocks  func()
		expectedError error
	}{
		{
			name: "success",
			req:  &domain.RestaurantSaveRequest{Name: " Pizzeria ", Address: "Main St 1"},
			prepareMocks: func() {
				repository.On("CreateRestaurant", mock.MatchedBy(func(r *domain.Restaurant) bool {
					return r.Name == "Pizzeria" && r.TeamID == teamID
				})).Return(nil).Once()
			},
		},
		{
			name:          "blank_name",
			req:           &domain.RestaurantSaveRequest{Name: ""},
			prepareMocks:  func() {},
			expectedError: domain.ErrRestaurantNameBlank,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			_, err := svc.Create(member(), testCase.req)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestRestaurantService_List(t *testing.T) {
	repository := mocks.NewRestaurantRepository(t)
	svc := service.NewRestaurantService(repository, nil, nil, nil, nil)

	repository.On("ListRestaurants", teamID).Return([]domain.Restaurant{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil).Once()
	repository.On("CountDishesByRestaurant", teamID).Return(map[int]int{1: 4}, nil).Once()

	infos, err := svc.List(member())
	require.NoError(t, err)
	assert.Equal(t, []domain.RestaurantInfo{{ID: 1, Name: "A", DishCount: 4}, {ID: 2, Name: "B", DishCount: 0}}, infos)
}

func TestRestaurantService_Access(t *testing.T) {
	repository := mocks.NewRestaurantRepository(t)
	svc := service.NewRestaurantService(repository, nil, nil, nil, nil)

	repository.On("GetRestaurant", restaurantID).Return(testRestaurant(), nil).Once()
	_, err := svc.Show(&domain.User{ID: 1, TeamID: 99}, restaurantID)
	assert.ErrorIs(t, err, domain.ErrNoAccessToRestaurant)

	repository.On("GetRestaurant", 404).Return(nil, nil).Once()
	_, err = svc.Show(member(), 404)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestRestaurantService_Delete(t *testing.T) {
	ctx := context.Background()
	repository := mocks.NewRestaurantRepository(t)
	cache := mocks.NewSideDishCache(t)
	svc := service.NewRestaurantService(repository, nil, cache, nil, nil)

	repository.On("GetRestaurant", restaurantID).Return(testRestaurant(), nil).Once()
	repository.On("DeleteRestaurant", restaurantID).Return(int64(1), nil).Once()
	cache.On("Invalidate", ctx, restaurantID).Return(nil).Once()

	assert.NoError(t, svc.Delete(ctx, member(), restaurantID))
}

func TestRestaurantService_PopularDishes(t *testing.T) {
	ctx := context.Background()
	repository := mocks.NewRestaurantRepository(t)
	dishes := mocks.NewDishRepository(t)
	activity := mocks.NewActivityReader(t)
	svc := service.NewRestaurantService(repository, dishes, nil, activity, nil)

	repository.On("GetRestaurant", restaurantID).Return(testRestaurant(), nil).Once()
	activity.On("PopularDishes", ctx, restaurantID, mock.AnythingOfType("time.Time"), 10).
		Return([]domain.PopularDish{{DishID: dishID, Count: 3}, {DishID: 404, Count: 1}}, nil).Once()
	dishes.On("ListDishes", restaurantID).Return([]domain.Dish{*testDish()}, nil).Once()

	popular, err := svc.PopularDishes(ctx, member(), restaurantID)
	require.NoError(t, err)
	assert.Equal(t, []domain.PopularDish{{DishID: dishID, DishName: "Margherita", Count: 3}}, popular)
}

func TestDishService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		req           *domain.DishSaveRequest
		prepareMocks  func(dishes *mocks.DishRepository, cache *mocks.SideDishCache)
		expectedError error
	}{
		{
			name: "success_with_side_dishes",
			req: &domain.DishSaveRequest{Name: "Pizza", Price: 2500, Category: "Main", SideDishes: []domain.SideDish{
				{Name: "Cheese", Price: 300},
			}},
			prepareMocks: func(dishes *mocks.DishRepository, cache *mocks.SideDishCache) {
				dishes.On("CreateDish", mock.MatchedBy(func(d *domain.Dish) bool {
					return d.RestaurantID == restaurantID && len(d.SideDishes) == 1 && d.SideDishes[0].ID != ""
				})).Return(nil).Once()
				cache.On("Invalidate", ctx, restaurantID).Return(nil).Once()
			},
		},
		{
			name:          "blank_name",
			req:           &domain.DishSaveRequest{Name: " ", Price: 100},
			prepareMocks:  func(*mocks.DishRepository, *mocks.SideDishCache) {},
			expectedError: domain.ErrDishNameBlank,
		},
		{
			name:          "negative_price",
			req:           &domain.DishSaveRequest{Name: "Pizza", Price: -1},
			prepareMocks:  func(*mocks.DishRepository, *mocks.SideDishCache) {},
			expectedError: domain.ErrDishPriceInvalid,
		},
		{
			name:          "side_dish_negative_price",
			req:           &domain.DishSaveRequest{Name: "Pizza", SideDishes: []domain.SideDish{{Name: "Cheese", Price: -3}}},
			prepareMocks:  func(*mocks.DishRepository, *mocks.SideDishCache) {},
			expectedError: domain.ErrSideDishPriceInvalid,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			dishes := mocks.NewDishRepository(t)
			restaurants := mocks.NewRestaurantRepository(t)
			cache := mocks.NewSideDishCache(t)
			svc := service.NewDishService(dishes, restaurants, cache, nil)

			restaurants.On("GetRestaurant", restaurantID).Return(testRestaurant(), nil).Once()
			testCase.prepareMocks(dishes, cache)

			_, err := svc.Create(ctx, member(), restaurantID, testCase.req)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestDishService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		prepareMocks  func(dishes *mocks.DishRepository, cache *mocks.SideDishCache)
		expectedError error
	}{
		{
			name: "unused_dish",
			prepareMocks: func(dishes *mocks.DishRepository, cache *mocks.SideDishCache) {
				dishes.On("GetDish", dishID).Return(testDish(), nil).Once()
				dishes.On("CountDishEntriesForDish", dishID).Return(0, nil).Once()
				dishes.On("DeleteDish", dishID).Return(int64(1), nil).Once()
				cache.On("Invalidate", ctx, restaurantID).Return(nil).Once()
			},
		},
		{
			name: "dish_in_use",
			prepareMocks: func(dishes *mocks.DishRepository, cache *mocks.SideDishCache) {
				dishes.On("GetDish", dishID).Return(testDish(), nil).Once()
				dishes.On("CountDishEntriesForDish", dishID).Return(2, nil).Once()
			},
			expectedError: domain.ErrDishInUse,
		},
		{
			name: "dish_of_other_restaurant",
			prepareMocks: func(dishes *mocks.DishRepository, cache *mocks.SideDishCache) {
				d := testDish()
				d.RestaurantID = 42
				dishes.On("GetDish", dishID).Return(d, nil).Once()
			},
			expectedError: domain.ErrDishNotFound,
		},
		{
			name: "cache_failure_is_not_fatal",
			prepareMocks: func(dishes *mocks.DishRepository, cache *mocks.SideDishCache) {
				dishes.On("GetDish", dishID).Return(testDish(), nil).Once()
				dishes.On("CountDishEntriesForDish", dishID).Return(0, nil).Once()
				dishes.On("DeleteDish", dishID).Return(int64(1), nil).Once()
				cache.On("Invalidate", ctx, restaurantID).Return(errors.New("redis down")).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			dishes := mocks.NewDishRepository(t)
			restaurants := mocks.NewRestaurantRepository(t)
			cache := mocks.NewSideDishCache(t)
			svc := service.NewDishService(dishes, restaurants, cache, nil)

			restaurants.On("GetRestaurant", restaurantID).Return(testRestaurant(), nil).Once()
			testCase.prepareMocks(dishes, cache)

			err := svc.Delete(ctx, member(), restaurantID, dishID)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestDishService_Update_KeepsSideDishIDs(t *testing.T) {
	ctx := context.Background()
	dishes := mocks.NewDishRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)
	cache := mocks.NewSideDishCache(t)
	svc := service.NewDishService(dishes, restaurants, cache, nil)

	restaurants.On("GetRestaurant", restaurantID).Return(testRestaurant(), nil).Once()
	dishes.On("GetDish", dishID).Return(testDish(), nil).Once()
	dishes.On("UpdateDish", mock.Anything).Return(nil).Once()
	cache.On("Invalidate", ctx, restaurantID).Return(nil).Once()

	dish, err := svc.Update(ctx, member(), restaurantID, dishID, &domain.DishSaveRequest{
		Name:  "Capricciosa",
		Price: 2800,
		SideDishes: []domain.SideDish{
			{ID: "s1", Name: "Cheese", Price: 25},
			{Name: "Ham", Price: 40},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Capricciosa", dish.Name)
	require.Len(t, dish.SideDishes, 2)
	assert.Equal(t, "s1", dish.SideDishes[0].ID)
	assert.NotEmpty(t, dish.SideDishes[1].ID)
}

func TestNotificationService_List(t *testing.T) {
	ctx := context.Background()
	activity := mocks.NewActivityReader(t)
	svc := service.NewNotificationService(activity, 20)

	expected := []domain.Notification{{OrderID: 1, Message: "Order 1 is now ORDERED", Timestamp: time.Now().Unix()}}
	activity.On("Notifications", ctx, memberID, 20).Return(expected, nil).Once()

	got, err := svc.List(ctx, member())
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}
