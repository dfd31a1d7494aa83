package store

import (
	"context"
	"sort"
	"sync"

	"expensebook/models"
)

// MemoryStore 进程内存储，不落盘，进程退出即丢失
// 用于没有嵌入式 SQL 的环境以及测试
type MemoryStore struct {
	mu     sync.RWMutex
	nextID uint
	rows   map[uint]models.Expense
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[uint]models.Expense)}
}

// Init 内存模式无需建表
func (s *MemoryStore) Init(ctx context.Context) error {
	return wrap("init", ctx.Err())
}

// Seed 写入示例数据，返回分配的 id
func (s *MemoryStore) Seed(ctx context.Context, inputs []models.ExpenseInput) ([]uint, error) {
	ids := make([]uint, 0, len(inputs))
	for _, in := range inputs {
		id, err := s.Create(ctx, in)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *MemoryStore) Create(ctx context.Context, in models.ExpenseInput) (uint, error) {
	if err := ctx.Err(); err != nil {
		return 0, wrap("create", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// id 单调递增，删除后不回收
	s.nextID++
	e := models.Expense{ID: s.nextID}
	in.Apply(&e)
	s.rows[e.ID] = e
	return e.ID, nil
}

func (s *MemoryStore) Get(ctx context.Context, id uint) (*models.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrap("get", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (s *MemoryStore) ListActive(ctx context.Context) ([]models.Expense, error) {
	return s.list(ctx, PartitionActive)
}

func (s *MemoryStore) ListTrashed(ctx context.Context) ([]models.Expense, error) {
	return s.list(ctx, PartitionTrashed)
}

func (s *MemoryStore) list(ctx context.Context, p Partition) ([]models.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrap("list "+string(p), err)
	}
	s.mu.RLock()
	list := make([]models.Expense, 0, len(s.rows))
	for _, e := range s.rows {
		if e.Deleted == p.Deleted() {
			list = append(list, e)
		}
	}
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt != list[j].CreatedAt {
			return list[i].CreatedAt > list[j].CreatedAt
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (s *MemoryStore) Update(ctx context.Context, id uint, in models.ExpenseInput) error {
	return s.mutate(ctx, "update", id, func(e *models.Expense) { in.Apply(e) })
}

func (s *MemoryStore) SoftDelete(ctx context.Context, id uint) error {
	return s.mutate(ctx, "soft delete", id, func(e *models.Expense) { e.Deleted = true })
}

func (s *MemoryStore) Restore(ctx context.Context, id uint) error {
	return s.mutate(ctx, "restore", id, func(e *models.Expense) { e.Deleted = false })
}

// mutate 修改单行；id 不存在时静默忽略
func (s *MemoryStore) mutate(ctx context.Context, op string, id uint, fn func(e *models.Expense)) error {
	if err := ctx.Err(); err != nil {
		return wrap(op, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.rows[id]
	if !ok {
		return nil
	}
	fn(&e)
	s.rows[id] = e
	return nil
}

func (s *MemoryStore) HardDelete(ctx context.Context, id uint) error {
	if err := ctx.Err(); err != nil {
		return wrap("hard delete", err)
	}
	s.mu.Lock()
	delete(s.rows, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
