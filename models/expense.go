package models

import (
	"fmt"
	"strings"
	"time"
)

// ExpenseType 收支类型
type ExpenseType string

const (
	TypeIncome  ExpenseType = "income"
	TypeExpense ExpenseType = "expense"
)

// DateLayout createdAt 的存储格式（YYYY-MM-DD）
const DateLayout = "2006-01-02"

// Valid 是否为合法的收支类型
func (t ExpenseType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Expense 收支记录模型
// deleted 把表分成两个互不相交的分区：正常列表（false）和回收站（true）
type Expense struct {
	ID        uint        `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Title     string      `json:"title" gorm:"column:title;type:text"`
	Amount    float64     `json:"amount" gorm:"column:amount"`
	Type      ExpenseType `json:"type" gorm:"column:type;type:varchar(16)"`
	CreatedAt string      `json:"createdAt" gorm:"column:createdAt;type:varchar(10);index"`
	Deleted   bool        `json:"deleted" gorm:"column:deleted;not null;default:false;index"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// ExpenseInput 创建/更新时可写的四个字段，id 和 deleted 不在其中
type ExpenseInput struct {
	Title     string      `json:"title"`
	Amount    float64     `json:"amount"`
	Type      ExpenseType `json:"type"`
	CreatedAt string      `json:"createdAt"`
}

// Apply 用输入覆盖记录的可写字段
func (in ExpenseInput) Apply(e *Expense) {
	e.Title = in.Title
	e.Amount = in.Amount
	e.Type = in.Type
	e.CreatedAt = in.CreatedAt
}

// ValidationError 调用方校验失败，不会进入存储层
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Normalize 去掉标题首尾空白
func (in *ExpenseInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.CreatedAt = strings.TrimSpace(in.CreatedAt)
}

// Validate 校验输入：标题非空、金额大于 0、类型合法、日期为 YYYY-MM-DD
func (in ExpenseInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Message: "标题不能为空"}
	}
	if !(in.Amount > 0) {
		return &ValidationError{Field: "amount", Message: "金额必须大于 0"}
	}
	if !in.Type.Valid() {
		return &ValidationError{Field: "type", Message: "类型只能是 income 或 expense"}
	}
	if _, err := ParseDate(in.CreatedAt); err != nil {
		return &ValidationError{Field: "createdAt", Message: "日期格式错误，应为: 2006-01-02"}
	}
	return nil
}

// ParseDate 解析 YYYY-MM-DD 日期（UTC）
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

// Today 当前 UTC 日期，格式 YYYY-MM-DD
func Today() string {
	return DateOf(time.Now())
}

// DateOf 取 t 对应的 UTC 日期
func DateOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// SampleExpenses 内存模式下的示例数据
func SampleExpenses() []ExpenseInput {
	return []ExpenseInput{
		{Title: "Lương tháng", Amount: 15000000, Type: TypeIncome, CreatedAt: "2024-01-15"},
		{Title: "Ăn sáng", Amount: 30000, Type: TypeExpense, CreatedAt: "2024-01-15"},
		{Title: "Xăng xe", Amount: 200000, Type: TypeExpense, CreatedAt: "2024-01-14"},
	}
}
