// Package cache 列表缓存的 redis 实现
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"expensebook/config"
	"expensebook/models"
	"expensebook/store"

	"github.com/redis/go-redis/v9"
)

// Redis 以 JSON 形式把分区列表存进 redis
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis 连接 redis 并 ping 一次
func NewRedis(cfg config.RedisConfig) (*Redis, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		// 不是 URL 时按 host:port 处理
		opt = &redis.Options{Addr: cfg.URL}
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("连接 redis 失败: %w", err)
	}

	return NewRedisWithClient(client, cfg.Prefix, cfg.TTL), nil
}

// NewRedisWithClient 使用已有客户端
func NewRedisWithClient(client *redis.Client, prefix string, ttl time.Duration) *Redis {
	if prefix == "" {
		prefix = "expensebook"
	}
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

func (r *Redis) key(p store.Partition) string {
	return r.prefix + ":expenses:" + string(p)
}

// Get 读取分区缓存，未命中返回 ok=false
func (r *Redis) Get(ctx context.Context, p store.Partition) ([]models.Expense, bool, error) {
	data, err := r.client.Get(ctx, r.key(p)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var list []models.Expense
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, false, err
	}
	return list, true, nil
}

// Set 写入分区缓存
func (r *Redis) Set(ctx context.Context, p store.Partition, list []models.Expense) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(p), data, r.ttl).Err()
}

// Invalidate 删除两个分区的缓存
func (r *Redis) Invalidate(ctx context.Context) error {
	return r.client.Del(ctx, r.key(store.PartitionActive), r.key(store.PartitionTrashed)).Err()
}

// Close 关闭客户端
func (r *Redis) Close() error {
	return r.client.Close()
}
