package store

import (
	"context"
	"errors"
	"testing"

	"expensebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coffee() models.ExpenseInput {
	return models.ExpenseInput{Title: "Coffee", Amount: 45000, Type: models.TypeExpense, CreatedAt: "2025-11-01"}
}

func ids(list []models.Expense) []uint {
	out := make([]uint, 0, len(list))
	for _, e := range list {
		out = append(out, e.ID)
	}
	return out
}

// runStoreSuite 所有后端共用的行为测试，open 每次返回一个已 Init 的空存储
func runStoreSuite(t *testing.T, open func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("InitIsIdempotent", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Init(ctx))
		require.NoError(t, s.Init(ctx))
	})

	t.Run("CreateThenListActive", func(t *testing.T) {
		s := open(t)
		id, err := s.Create(ctx, coffee())
		require.NoError(t, err)
		assert.NotZero(t, id)

		list, err := s.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, models.Expense{
			ID: id, Title: "Coffee", Amount: 45000, Type: models.TypeExpense, CreatedAt: "2025-11-01", Deleted: false,
		}, list[0])

		trashed, err := s.ListTrashed(ctx)
		require.NoError(t, err)
		assert.Empty(t, trashed)
		assert.NotNil(t, trashed)
	})

	t.Run("Get", func(t *testing.T) {
		s := open(t)
		id, err := s.Create(ctx, coffee())
		require.NoError(t, err)

		e, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Coffee", e.Title)

		_, err = s.Get(ctx, id+100)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("UpdateKeepsIDAndDeleted", func(t *testing.T) {
		s := open(t)
		id, err := s.Create(ctx, coffee())
		require.NoError(t, err)
		other, err := s.Create(ctx, models.ExpenseInput{Title: "Tea", Amount: 20000, Type: models.TypeExpense, CreatedAt: "2025-10-30"})
		require.NoError(t, err)

		require.NoError(t, s.Update(ctx, id, models.ExpenseInput{
			Title: "Coffee Large", Amount: 60000, Type: models.TypeExpense, CreatedAt: "2025-11-01",
		}))

		list, err := s.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, id, list[0].ID)
		assert.Equal(t, "Coffee Large", list[0].Title)
		assert.Equal(t, 60000.0, list[0].Amount)
		assert.False(t, list[0].Deleted)
		assert.Equal(t, other, list[1].ID)
		assert.Equal(t, "Tea", list[1].Title)

		// 回收站中的记录更新后仍在回收站
		require.NoError(t, s.SoftDelete(ctx, other))
		require.NoError(t, s.Update(ctx, other, models.ExpenseInput{Title: "Green Tea", Amount: 25000, Type: models.TypeExpense, CreatedAt: "2025-10-30"}))
		trashed, err := s.ListTrashed(ctx)
		require.NoError(t, err)
		require.Len(t, trashed, 1)
		assert.Equal(t, "Green Tea", trashed[0].Title)
		assert.True(t, trashed[0].Deleted)
	})

	t.Run("SoftDeleteMovesToTrash", func(t *testing.T) {
		s := open(t)
		id, err := s.Create(ctx, coffee())
		require.NoError(t, err)

		require.NoError(t, s.SoftDelete(ctx, id))
		active, err := s.ListActive(ctx)
		require.NoError(t, err)
		assert.NotContains(t, ids(active), id)
		trashed, err := s.ListTrashed(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uint{id}, ids(trashed))
		assert.True(t, trashed[0].Deleted)

		// 重复软删除结果不变
		require.NoError(t, s.SoftDelete(ctx, id))
		again, err := s.ListTrashed(ctx)
		require.NoError(t, err)
		assert.Equal(t, trashed, again)
		active, err = s.ListActive(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("RestoreAfterSoftDelete", func(t *testing.T) {
		s := open(t)
		id, err := s.Create(ctx, coffee())
		require.NoError(t, err)
		require.NoError(t, s.SoftDelete(ctx, id))
		require.NoError(t, s.Restore(ctx, id))
		require.NoError(t, s.Restore(ctx, id))

		active, err := s.ListActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uint{id}, ids(active))
		trashed, err := s.ListTrashed(ctx)
		require.NoError(t, err)
		assert.Empty(t, trashed)
	})

	t.Run("HardDeleteIsPermanent", func(t *testing.T) {
		s := open(t)
		active, err := s.Create(ctx, coffee())
		require.NoError(t, err)
		trashed, err := s.Create(ctx, coffee())
		require.NoError(t, err)
		require.NoError(t, s.SoftDelete(ctx, trashed))

		require.NoError(t, s.HardDelete(ctx, active))
		require.NoError(t, s.HardDelete(ctx, trashed))
		require.NoError(t, s.HardDelete(ctx, trashed))

		// 物理删除后恢复、更新都不生效，也不报错
		require.NoError(t, s.Restore(ctx, trashed))
		require.NoError(t, s.Update(ctx, active, coffee()))
		require.NoError(t, s.SoftDelete(ctx, active))

		a, err := s.ListActive(ctx)
		require.NoError(t, err)
		assert.Empty(t, a)
		tr, err := s.ListTrashed(ctx)
		require.NoError(t, err)
		assert.Empty(t, tr)
		_, err = s.Get(ctx, active)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("IDsAreNotReused", func(t *testing.T) {
		s := open(t)
		a, err := s.Create(ctx, coffee())
		require.NoError(t, err)
		b, err := s.Create(ctx, coffee())
		require.NoError(t, err)
		require.NoError(t, s.HardDelete(ctx, b))

		c, err := s.Create(ctx, coffee())
		require.NoError(t, err)
		assert.Greater(t, b, a)
		assert.Greater(t, c, b)
	})

	t.Run("OrderByCreatedAtThenID", func(t *testing.T) {
		s := open(t)
		older, err := s.Create(ctx, models.ExpenseInput{Title: "Xăng xe", Amount: 200000, Type: models.TypeExpense, CreatedAt: "2024-01-14"})
		require.NoError(t, err)
		first, err := s.Create(ctx, models.ExpenseInput{Title: "Lương tháng", Amount: 15000000, Type: models.TypeIncome, CreatedAt: "2024-01-15"})
		require.NoError(t, err)
		second, err := s.Create(ctx, models.ExpenseInput{Title: "Ăn sáng", Amount: 30000, Type: models.TypeExpense, CreatedAt: "2024-01-15"})
		require.NoError(t, err)

		list, err := s.ListActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uint{second, first, older}, ids(list))

		for _, id := range []uint{older, first, second} {
			require.NoError(t, s.SoftDelete(ctx, id))
		}
		trashed, err := s.ListTrashed(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uint{second, first, older}, ids(trashed))
	})

	t.Run("MissingIDIsSilentNoop", func(t *testing.T) {
		s := open(t)
		id, err := s.Create(ctx, coffee())
		require.NoError(t, err)
		missing := id + 1000

		assert.NoError(t, s.Update(ctx, missing, coffee()))
		assert.NoError(t, s.SoftDelete(ctx, missing))
		assert.NoError(t, s.Restore(ctx, missing))
		assert.NoError(t, s.HardDelete(ctx, missing))

		list, err := s.ListActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, []uint{id}, ids(list))
	})
}
