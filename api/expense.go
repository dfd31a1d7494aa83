package api

import (
	"errors"
	"strconv"

	"expensebook/models"
	"expensebook/store"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 收支记录处理器
type ExpenseHandler struct {
	store store.Store
}

// NewExpenseHandler 创建收支记录处理器
func NewExpenseHandler(s store.Store) *ExpenseHandler {
	return &ExpenseHandler{store: s}
}

// CreateExpenseRequest 创建收支记录请求，日期由服务端取当天
type CreateExpenseRequest struct {
	Title  string  `json:"title" binding:"required" example:"Coffee"`
	Amount float64 `json:"amount" binding:"required,gt=0" example:"45000"`
	Type   string  `json:"type" binding:"required,oneof=income expense" example:"expense"`
}

// UpdateExpenseRequest 更新收支记录请求，四个字段整体覆盖
type UpdateExpenseRequest struct {
	Title     string  `json:"title" binding:"required" example:"Coffee Large"`
	Amount    float64 `json:"amount" binding:"required,gt=0" example:"60000"`
	Type      string  `json:"type" binding:"required,oneof=income expense" example:"expense"`
	CreatedAt string  `json:"createdAt" example:"2025-11-01"` // 不传则为当天
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil || id == 0 {
		BadRequest(c, "无效的ID")
		return 0, false
	}
	return uint(id), true
}

// validate 校验失败时直接写响应并返回 false
func validate(c *gin.Context, in *models.ExpenseInput) bool {
	in.Normalize()
	if err := in.Validate(); err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			ValidationFailed(c, ve)
		} else {
			BadRequest(c, err.Error())
		}
		return false
	}
	return true
}

// Create 创建收支记录
// @Summary 创建收支记录
// @Description 新增一条收入或支出，日期为当天，deleted 默认为 false
// @Tags 收支记录
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "收支记录信息"
// @Success 200 {object} Response{data=models.Expense} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "存储失败"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	in := models.ExpenseInput{
		Title:     req.Title,
		Amount:    req.Amount,
		Type:      models.ExpenseType(req.Type),
		CreatedAt: models.Today(),
	}
	if !validate(c, &in) {
		return
	}

	id, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		StoreError(c, err, "创建收支记录失败")
		return
	}

	expense := models.Expense{ID: id}
	in.Apply(&expense)
	SuccessWithMessage(c, "创建成功", expense)
}

// List 获取收支记录列表
// @Summary 获取收支记录列表
// @Description 未删除的记录，按日期倒序，同一天按 ID 倒序
// @Tags 收支记录
// @Produce json
// @Success 200 {object} Response{data=ListResponse{list=[]models.Expense}} "获取成功"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	list, err := h.store.ListActive(c.Request.Context())
	if err != nil {
		StoreError(c, err, "查询失败")
		return
	}
	Success(c, ListResponse{Total: len(list), List: list})
}

// Get 获取单条收支记录
// @Summary 获取单条收支记录
// @Description 根据ID获取记录详情（包括回收站中的记录）
// @Tags 收支记录
// @Produce json
// @Param id path int true "记录ID"
// @Success 200 {object} Response{data=models.Expense} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	expense, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		StoreError(c, err, "查询失败")
		return
	}
	Success(c, expense)
}

// Update 更新收支记录
// @Summary 更新收支记录
// @Description 覆盖标题、金额、类型和日期；ID 不存在时同样返回成功
// @Tags 收支记录
// @Accept json
// @Produce json
// @Param id path int true "记录ID"
// @Param request body UpdateExpenseRequest true "收支记录信息"
// @Success 200 {object} Response "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "存储失败"
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	in := models.ExpenseInput{
		Title:     req.Title,
		Amount:    req.Amount,
		Type:      models.ExpenseType(req.Type),
		CreatedAt: req.CreatedAt,
	}
	if in.CreatedAt == "" {
		in.CreatedAt = models.Today()
	}
	if !validate(c, &in) {
		return
	}

	if err := h.store.Update(c.Request.Context(), id, in); err != nil {
		StoreError(c, err, "更新失败")
		return
	}
	SuccessWithMessage(c, "更新成功", nil)
}

// Delete 删除收支记录（移入回收站）
// @Summary 删除收支记录
// @Description 软删除，记录移入回收站，可恢复
// @Tags 收支记录
// @Produce json
// @Param id path int true "记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 500 {object} Response "存储失败"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.SoftDelete(c.Request.Context(), id); err != nil {
		StoreError(c, err, "删除失败")
		return
	}
	SuccessWithMessage(c, "已移入回收站", nil)
}
