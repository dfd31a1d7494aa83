package api

import (
	"expensebook/service"
	"expensebook/store"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 收支汇总处理器
type SummaryHandler struct {
	store store.Store
}

// NewSummaryHandler 创建汇总处理器
func NewSummaryHandler(s store.Store) *SummaryHandler {
	return &SummaryHandler{store: s}
}

// Get 获取收支汇总
// @Summary 获取收支汇总
// @Description 统计未删除记录的总收入、总支出和结余
// @Tags 汇总
// @Produce json
// @Success 200 {object} Response{data=service.Summary} "获取成功"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/summary [get]
func (h *SummaryHandler) Get(c *gin.Context) {
	list, err := h.store.ListActive(c.Request.Context())
	if err != nil {
		StoreError(c, err, "查询失败")
		return
	}
	Success(c, service.Summarize(list))
}
