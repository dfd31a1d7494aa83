package store

import (
	"context"
	"errors"

	"expensebook/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore 基于 gorm 的持久化实现（sqlite / mysql / postgres）
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建 gorm 存储
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DB 底层连接
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

// Init 自动迁移 expenses 表
func (s *GormStore) Init(ctx context.Context) error {
	return wrap("init", s.db.WithContext(ctx).AutoMigrate(&models.Expense{}))
}

// Create 插入一条记录，deleted 默认为 false
func (s *GormStore) Create(ctx context.Context, in models.ExpenseInput) (uint, error) {
	var e models.Expense
	in.Apply(&e)
	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return 0, wrap("create", err)
	}
	return e.ID, nil
}

// Get 按 id 查询，不区分分区
func (s *GormStore) Get(ctx context.Context, id uint) (*models.Expense, error) {
	var e models.Expense
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrap("get", err)
	}
	return &e, nil
}

func (s *GormStore) ListActive(ctx context.Context) ([]models.Expense, error) {
	return s.list(ctx, PartitionActive)
}

func (s *GormStore) ListTrashed(ctx context.Context) ([]models.Expense, error) {
	return s.list(ctx, PartitionTrashed)
}

func (s *GormStore) list(ctx context.Context, p Partition) ([]models.Expense, error) {
	list := make([]models.Expense, 0)
	err := s.db.WithContext(ctx).
		Where(map[string]interface{}{"deleted": p.Deleted()}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "createdAt"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Find(&list).Error
	if err != nil {
		return nil, wrap("list "+string(p), err)
	}
	return list, nil
}

// Update 覆盖 title、amount、type、createdAt，不修改 deleted
func (s *GormStore) Update(ctx context.Context, id uint, in models.ExpenseInput) error {
	err := s.db.WithContext(ctx).Model(&models.Expense{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":     in.Title,
			"amount":    in.Amount,
			"type":      in.Type,
			"createdAt": in.CreatedAt,
		}).Error
	return wrap("update", err)
}

func (s *GormStore) SoftDelete(ctx context.Context, id uint) error {
	return wrap("soft delete", s.setDeleted(ctx, id, true))
}

func (s *GormStore) Restore(ctx context.Context, id uint) error {
	return wrap("restore", s.setDeleted(ctx, id, false))
}

func (s *GormStore) setDeleted(ctx context.Context, id uint, deleted bool) error {
	return s.db.WithContext(ctx).Model(&models.Expense{}).
		Where("id = ?", id).
		Update("deleted", deleted).Error
}

// HardDelete 物理删除，无法恢复
func (s *GormStore) HardDelete(ctx context.Context, id uint) error {
	return wrap("hard delete", s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Expense{}).Error)
}

// Close 关闭底层连接池
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return wrap("close", err)
	}
	return wrap("close", sqlDB.Close())
}
