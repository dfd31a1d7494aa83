package store

import (
	"context"
	"io"
	"log"
	"sync/atomic"

	"expensebook/models"
)

// ListCache 分区列表缓存
// Get 未命中时返回 (nil, false, nil)
type ListCache interface {
	Get(ctx context.Context, p Partition) ([]models.Expense, bool, error)
	Set(ctx context.Context, p Partition, list []models.Expense) error
	Invalidate(ctx context.Context) error
}

// Cached 给 Store 加一层列表读缓存，任何写操作成功后清空两个分区的缓存
// 缓存出错只记日志，读请求回落到底层存储
// 同一进程内，读取期间发生的写入不会被回写的旧列表覆盖；多进程共用同一 redis 时仍可能短暂读到旧列表，直到 TTL 过期
type Cached struct {
	Store
	cache ListCache
	gen   atomic.Uint64 // 每次写入成功后递增
}

// NewCached 包装存储
func NewCached(s Store, cache ListCache) *Cached {
	return &Cached{Store: s, cache: cache}
}

func (c *Cached) ListActive(ctx context.Context) ([]models.Expense, error) {
	return c.list(ctx, PartitionActive, c.Store.ListActive)
}

func (c *Cached) ListTrashed(ctx context.Context) ([]models.Expense, error) {
	return c.list(ctx, PartitionTrashed, c.Store.ListTrashed)
}

func (c *Cached) list(ctx context.Context, p Partition, load func(context.Context) ([]models.Expense, error)) ([]models.Expense, error) {
	list, ok, err := c.cache.Get(ctx, p)
	if err != nil {
		log.Printf("读取列表缓存失败 (%s): %v", p, err)
	} else if ok {
		return list, nil
	}

	gen := c.gen.Load()
	list, err = load(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, p, list); err != nil {
		log.Printf("写入列表缓存失败 (%s): %v", p, err)
	} else if c.gen.Load() != gen {
		// 加载期间有写入，刚写入的可能是旧列表
		c.clear(ctx)
	}
	return list, nil
}

func (c *Cached) Create(ctx context.Context, in models.ExpenseInput) (uint, error) {
	id, err := c.Store.Create(ctx, in)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx)
	return id, nil
}

func (c *Cached) Update(ctx context.Context, id uint, in models.ExpenseInput) error {
	return c.after(ctx, c.Store.Update(ctx, id, in))
}

func (c *Cached) SoftDelete(ctx context.Context, id uint) error {
	return c.after(ctx, c.Store.SoftDelete(ctx, id))
}

func (c *Cached) Restore(ctx context.Context, id uint) error {
	return c.after(ctx, c.Store.Restore(ctx, id))
}

func (c *Cached) HardDelete(ctx context.Context, id uint) error {
	return c.after(ctx, c.Store.HardDelete(ctx, id))
}

func (c *Cached) after(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// invalidate 在写入成功后调用，请求被取消也要清掉缓存
func (c *Cached) invalidate(ctx context.Context) {
	c.gen.Add(1)
	c.clear(ctx)
}

func (c *Cached) clear(ctx context.Context) {
	if err := c.cache.Invalidate(context.WithoutCancel(ctx)); err != nil {
		log.Printf("清除列表缓存失败: %v", err)
	}
}

// Close 关闭底层存储，缓存实现了 io.Closer 时一并关闭
func (c *Cached) Close() error {
	err := c.Store.Close()
	if closer, ok := c.cache.(io.Closer); ok {
		if cerr := closer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
