package store_test

import (
	"context"
	"testing"
	"time"

	"expensebook/cache"
	"expensebook/config"
	"expensebook/models"
	"expensebook/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRedisCached(t *testing.T) (*miniredis.Miniredis, *store.Cached) {
	mr := miniredis.RunT(t)
	rc, err := cache.NewRedis(config.RedisConfig{URL: mr.Addr(), TTL: time.Minute})
	require.NoError(t, err)
	s := store.NewCached(store.NewMemoryStore(), rc)
	require.NoError(t, s.Init(context.Background()))
	t.Cleanup(func() { s.Close() })
	return mr, s
}

func TestRedisCached_Suite(t *testing.T) {
	store.RunStoreSuite(t, func(t *testing.T) store.Store {
		_, s := openRedisCached(t)
		return s
	})
}

func TestRedisCached_ListIsCachedAndInvalidated(t *testing.T) {
	ctx := context.Background()
	mr, s := openRedisCached(t)

	_, err := s.Create(ctx, models.ExpenseInput{Title: "Coffee", Amount: 45000, Type: models.TypeExpense, CreatedAt: "2025-11-01"})
	require.NoError(t, err)
	assert.False(t, mr.Exists("expensebook:expenses:active"))

	list, err := s.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, mr.Exists("expensebook:expenses:active"))

	require.NoError(t, s.SoftDelete(ctx, list[0].ID))
	assert.False(t, mr.Exists("expensebook:expenses:active"))

	list, err = s.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
