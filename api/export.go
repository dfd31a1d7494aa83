package api

import (
	"bytes"
	"fmt"
	"net/http"

	"expensebook/models"
	"expensebook/service"
	"expensebook/store"

	"github.com/gin-gonic/gin"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	store store.Store
}

// NewExportHandler 创建导出处理器
func NewExportHandler(s store.Store) *ExportHandler {
	return &ExportHandler{store: s}
}

// ExportCSV 导出收支记录为 CSV
// @Summary 导出收支记录
// @Description 导出未删除的收支记录为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Success 200 {file} file "CSV 文件"
// @Failure 500 {object} Response "导出失败"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	list, err := h.store.ListActive(c.Request.Context())
	if err != nil {
		StoreError(c, err, "查询数据失败")
		return
	}

	buf := new(bytes.Buffer)
	if err := service.ExportCSV(buf, list); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("expenses_%s.csv", models.Today())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出收支记录为 Excel
// @Summary 导出收支记录为 Excel
// @Description 导出未删除的收支记录为 xlsx 文件，末行为结余
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Excel 文件"
// @Failure 500 {object} Response "导出失败"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	list, err := h.store.ListActive(c.Request.Context())
	if err != nil {
		StoreError(c, err, "查询数据失败")
		return
	}

	buf := new(bytes.Buffer)
	if err := service.ExportExcel(buf, list); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	filename := fmt.Sprintf("expenses_%s.xlsx", models.Today())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
