package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"team-lunch/order-svc/internal/domain"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) SideDishMapKey(restaurantID int) string {
	return "side_dishes:" + strconv.Itoa(restaurantID)
}

func (c *RedisCache) GetSideDishMap(ctx context.Context, restaurantID int) (map[int][]domain.SideDish, bool, error) {
	raw, err := c.Client.Get(ctx, c.SideDishMapKey(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var m map[int][]domain.SideDish
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false, fmt.Errorf("decode side dish map: %w", err)
	}
	return m, true, nil
}

func (c *RedisCache) SetSideDishMap(ctx context.Context, restaurantID int, m map[int][]domain.SideDish) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.SideDishMapKey(restaurantID), payload, c.TTL).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, restaurantID int) error {
	return c.Client.Del(ctx, c.SideDishMapKey(restaurantID)).Err()
}

// ActivityStore reads what notify-svc writes.
type ActivityStore struct {
	Client *redis.Client
}

func NewActivityStore(client *redis.Client) *ActivityStore {
	return &ActivityStore{Client: client}
}

func DailyStatsKey(day time.Time, restaurantID int) string {
	return "stats:daily:" + day.Format("2006-01-02") + ":" + strconv.Itoa(restaurantID)
}

func NotificationsKey(userID int) string {
	return "notifications:" + strconv.Itoa(userID)
}

func (s *ActivityStore) Notifications(ctx context.Context, userID int, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		return []domain.Notification{}, nil
	}
	raw, err := s.Client.LRange(ctx, NotificationsKey(userID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(raw))
	for _, item := range raw {
		var n domain.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// PopularDishes returns dish ids by descending add count for the day.
// Members whose count dropped to zero or below are skipped.
func (s *ActivityStore) PopularDishes(ctx context.Context, restaurantID int, day time.Time, limit int) ([]domain.PopularDish, error) {
	if limit <= 0 {
		return []domain.PopularDish{}, nil
	}
	members, err := s.Client.ZRevRangeWithScores(ctx, DailyStatsKey(day, restaurantID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	popular := make([]domain.PopularDish, 0, len(members))
	for _, m := range members {
		if m.Score <= 0 {
			continue
		}
		member, ok := m.Member.(string)
		if !ok {
			continue
		}
		dishID, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		popular = append(popular, domain.PopularDish{DishID: dishID, Count: m.Score})
	}
	return popular, nil
}
