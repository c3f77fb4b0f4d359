package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"team-lunch/notify-svc/internal/domain"
)

type Store struct {
	rdb   *redis.Client
	ttl   time.Duration
	limit int
}

func NewStore(rdb *redis.Client, ttl time.Duration, limit int) *Store {
	return &Store{
		rdb:   rdb,
		ttl:   ttl,
		limit: limit,
	}
}

func DailyStatsKey(day time.Time, restaurantID int) string {
	return fmt.Sprintf("stats:daily:%s:%d", day.Format("2006-01-02"), restaurantID)
}

func NotificationsKey(userID int) string {
	return fmt.Sprintf("notifications:%d", userID)
}

func (s *Store) IncrementDish(ctx context.Context, restaurantID, dishID int, day time.Time) error {
	return s.bumpDish(ctx, restaurantID, dishID, day, 1)
}

func (s *Store) DecrementDish(ctx context.Context, restaurantID, dishID int, day time.Time) error {
	return s.bumpDish(ctx, restaurantID, dishID, day, -1)
}

func (s *Store) bumpDish(ctx context.Context, restaurantID, dishID int, day time.Time, delta float64) error {
	key := DailyStatsKey(day, restaurantID)
	pipe := s.rdb.TxPipeline()
	pipe.ZIncrBy(ctx, key, delta, strconv.Itoa(dishID))
	if delta < 0 {
		// a removal without a matching add on that day must not go negative
		pipe.ZRemRangeByScore(ctx, key, "-inf", "0")
	}
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// PushNotification prepends n to the user's inbox and trims it to the limit.
func (s *Store) PushNotification(ctx context.Context, userID int, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	key := NotificationsKey(userID)
	pipe := s.rdb.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, int64(s.limit-1))
	pipe.Expire(ctx, key, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}
