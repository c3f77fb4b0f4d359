package tests

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-lunch/notify-svc/internal/domain"
	"team-lunch/notify-svc/internal/storage"
)

func setupStore(t *testing.T, limit int) (*miniredis.Miniredis, *storage.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, storage.NewStore(rdb, 7*24*time.Hour, limit)
}

func TestStore_DishCounters(t *testing.T) {
	ctx := context.Background()
	mr, store := setupStore(t, 50)
	key := storage.DailyStatsKey(eventTime, 10)

	require.NoError(t, store.IncrementDish(ctx, 10, 9, eventTime))
	require.NoError(t, store.IncrementDish(ctx, 10, 9, eventTime))
	require.NoError(t, store.IncrementDish(ctx, 10, 11, eventTime))
	require.NoError(t, store.DecrementDish(ctx, 10, 11, eventTime))

	score, err := mr.ZScore(key, "9")
	require.NoError(t, err)
	assert.Equal(t, float64(2), score)

	members, err := mr.ZMembers(key)
	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, members)

	assert.Equal(t, "stats:daily:2024-03-14:10", key)
	assert.Equal(t, 7*24*time.Hour, mr.TTL(key))
}

func TestStore_PushNotification(t *testing.T) {
	ctx := context.Background()
	mr, store := setupStore(t, 2)

	for i := 1; i <= 3; i++ {
		require.NoError(t, store.PushNotification(ctx, 200, domain.Notification{OrderID: i, Message: "changed"}))
	}

	items, err := mr.List(storage.NotificationsKey(200))
	require.NoError(t, err)
	require.Len(t, items, 2)

	var newest domain.Notification
	require.NoError(t, json.Unmarshal([]byte(items[0]), &newest))
	assert.Equal(t, 3, newest.OrderID)
	assert.Equal(t, 7*24*time.Hour, mr.TTL(storage.NotificationsKey(200)))
}

func TestStore_DecrementWithoutIncrement(t *testing.T) {
	ctx := context.Background()
	mr, store := setupStore(t, 50)
	key := storage.DailyStatsKey(eventTime, 10)

	require.NoError(t, store.IncrementDish(ctx, 10, 9, eventTime))
	require.NoError(t, store.DecrementDish(ctx, 10, 11, eventTime))

	members, err := mr.ZMembers(key)
	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, members)

	otherDay := storage.DailyStatsKey(eventTime.AddDate(0, 0, 1), 10)
	require.NoError(t, store.DecrementDish(ctx, 10, 9, eventTime.AddDate(0, 0, 1)))
	assert.False(t, mr.Exists(otherDay))
}
