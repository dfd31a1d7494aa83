package store

import (
	"context"
	"errors"
	"testing"

	"expensebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	data        map[Partition][]models.Expense
	gets        int
	invalidated int
	failGet     bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[Partition][]models.Expense)}
}

func (f *fakeCache) Get(_ context.Context, p Partition) ([]models.Expense, bool, error) {
	f.gets++
	if f.failGet {
		return nil, false, errors.New("connection refused")
	}
	list, ok := f.data[p]
	return list, ok, nil
}

func (f *fakeCache) Set(_ context.Context, p Partition, list []models.Expense) error {
	f.data[p] = list
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.invalidated++
	f.data = make(map[Partition][]models.Expense)
	return nil
}

func TestCached_Suite(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Store {
		s := NewCached(NewMemoryStore(), newFakeCache())
		require.NoError(t, s.Init(context.Background()))
		return s
	})
}

func TestCached_ServesFromCacheUntilWrite(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	cache := newFakeCache()
	s := NewCached(mem, cache)

	id, err := s.Create(ctx, coffee())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)

	list, err := s.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Contains(t, cache.data, PartitionActive)

	// 绕过缓存直接改底层存储，缓存仍返回旧数据
	require.NoError(t, mem.SoftDelete(ctx, id))
	list, err = s.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// 经由 Cached 写入后缓存失效
	require.NoError(t, s.Restore(ctx, id))
	assert.Equal(t, 2, cache.invalidated)
	require.NoError(t, s.SoftDelete(ctx, id))
	list, err = s.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCached_CacheErrorFallsThrough(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()
	cache.failGet = true
	s := NewCached(NewMemoryStore(), cache)

	_, err := s.Create(ctx, coffee())
	require.NoError(t, err)

	list, err := s.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCached_FailedWriteKeepsCache(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cache := newFakeCache()
	s := NewCached(NewMemoryStore(), cache)
	cancel()

	_, err := s.Create(ctx, coffee())
	require.Error(t, err)
	assert.Equal(t, 0, cache.invalidated)
}

// cancelOnCreate 在写入成功后取消请求 context，模拟客户端提前断开
type cancelOnCreate struct {
	Store
	cancel context.CancelFunc
}

func (s cancelOnCreate) Create(ctx context.Context, in models.ExpenseInput) (uint, error) {
	id, err := s.Store.Create(ctx, in)
	s.cancel()
	return id, err
}

func TestCached_InvalidateSurvivesCanceledRequest(t *testing.T) {
	cache := newFakeCache()
	mem := NewMemoryStore()
	s := NewCached(mem, cache)

	list, err := s.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	ctx, cancel := context.WithCancel(context.Background())
	s.Store = cancelOnCreate{Store: mem, cancel: cancel}
	id, err := s.Create(ctx, coffee())
	require.NoError(t, err)
	require.Error(t, ctx.Err())
	assert.Equal(t, 1, cache.invalidated)

	list, err = s.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint{id}, ids(list))
}

// writeDuringList 在列表加载完成、写回缓存之前执行一次写入
type writeDuringList struct {
	Store
	during func()
}

func (s writeDuringList) ListActive(ctx context.Context) ([]models.Expense, error) {
	list, err := s.Store.ListActive(ctx)
	if s.during != nil {
		s.during()
	}
	return list, err
}

func TestCached_WriteDuringLoadDoesNotLeaveStaleList(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()
	mem := NewMemoryStore()
	s := NewCached(nil, cache)

	var created uint
	s.Store = writeDuringList{Store: mem, during: func() {
		id, err := s.Create(ctx, coffee())
		require.NoError(t, err)
		created = id
	}}

	// 本次读取拿到的是写入前的空列表
	list, err := s.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotContains(t, cache.data, PartitionActive)

	s.Store = mem
	list, err = s.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{created}, ids(list))
}
