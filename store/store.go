// Package store 收支记录的持久化层。
//
// Store 对外暴露的操作在所有后端上完全一致；具体用哪个后端由 database.Open
// 在启动时决定，调用方只依赖这个接口。
package store

import (
	"context"
	"errors"
	"fmt"

	"expensebook/models"
)

// ErrNotFound 记录不存在（仅 Get 返回）
var ErrNotFound = errors.New("记录不存在")

// Store 持久化层接口
//
// 对不存在的 id 调用 Update / SoftDelete / Restore / HardDelete 不报错，
// 也没有任何效果。
type Store interface {
	// Init 建表（已存在则跳过），其他操作之前调用一次
	Init(ctx context.Context) error
	Create(ctx context.Context, in models.ExpenseInput) (uint, error)
	Get(ctx context.Context, id uint) (*models.Expense, error)
	// ListActive 未删除的记录，按 createdAt 倒序，同一天按 id 倒序
	ListActive(ctx context.Context) ([]models.Expense, error)
	// ListTrashed 回收站中的记录，排序同 ListActive
	ListTrashed(ctx context.Context) ([]models.Expense, error)
	Update(ctx context.Context, id uint, in models.ExpenseInput) error
	SoftDelete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) error
	HardDelete(ctx context.Context, id uint) error
	Close() error
}

// StorageError 底层存储返回的错误
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// Partition 记录所在分区
type Partition string

const (
	PartitionActive  Partition = "active"
	PartitionTrashed Partition = "trashed"
)

// Deleted 分区对应的 deleted 值
func (p Partition) Deleted() bool {
	return p == PartitionTrashed
}
