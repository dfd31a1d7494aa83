package api

import (
	"expensebook/store"

	"github.com/gin-gonic/gin"
)

// TrashHandler 回收站处理器
type TrashHandler struct {
	store store.Store
}

// NewTrashHandler 创建回收站处理器
func NewTrashHandler(s store.Store) *TrashHandler {
	return &TrashHandler{store: s}
}

// List 获取回收站记录
// @Summary 获取回收站记录
// @Description 已软删除的记录，按日期倒序，同一天按 ID 倒序
// @Tags 回收站
// @Produce json
// @Success 200 {object} Response{data=ListResponse{list=[]models.Expense}} "获取成功"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/trash [get]
func (h *TrashHandler) List(c *gin.Context) {
	list, err := h.store.ListTrashed(c.Request.Context())
	if err != nil {
		StoreError(c, err, "查询失败")
		return
	}
	Success(c, ListResponse{Total: len(list), List: list})
}

// Restore 恢复记录
// @Summary 恢复记录
// @Description 把回收站中的记录恢复到列表
// @Tags 回收站
// @Produce json
// @Param id path int true "记录ID"
// @Success 200 {object} Response "恢复成功"
// @Failure 500 {object} Response "存储失败"
// @Router /api/v1/trash/{id}/restore [post]
func (h *TrashHandler) Restore(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.Restore(c.Request.Context(), id); err != nil {
		StoreError(c, err, "恢复失败")
		return
	}
	SuccessWithMessage(c, "恢复成功", nil)
}

// Delete 永久删除
// @Summary 永久删除记录
// @Description 物理删除，无法恢复
// @Tags 回收站
// @Produce json
// @Param id path int true "记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 500 {object} Response "存储失败"
// @Router /api/v1/trash/{id} [delete]
func (h *TrashHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.HardDelete(c.Request.Context(), id); err != nil {
		StoreError(c, err, "删除失败")
		return
	}
	SuccessWithMessage(c, "已永久删除", nil)
}
