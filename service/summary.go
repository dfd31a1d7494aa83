package service

import (
	"expensebook/models"

	"github.com/shopspring/decimal"
)

// Summary 收支汇总
type Summary struct {
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Balance      decimal.Decimal `json:"balance"`
	IncomeCount  int             `json:"income_count"`
	ExpenseCount int             `json:"expense_count"`
}

// Summarize 汇总收入、支出和结余（收入 - 支出）
// 用 decimal 累加，避免浮点误差
func Summarize(list []models.Expense) Summary {
	var s Summary
	for _, e := range list {
		amount := decimal.NewFromFloat(e.Amount)
		switch e.Type {
		case models.TypeIncome:
			s.Income = s.Income.Add(amount)
			s.IncomeCount++
		case models.TypeExpense:
			s.Expense = s.Expense.Add(amount)
			s.ExpenseCount++
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}
